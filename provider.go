package datefmt

// Style selects the abbreviated or the full form of a name.
type Style uint8

const (
	Short Style = iota
	Long
)

func (s Style) String() string {
	if s == Long {
		return "long"
	}
	return "short"
}

// Provider supplies the locale data a Formatter needs. Implementations must be safe for concurrent use and return an error wrapping ErrLocaleDataMissing when a locale has no entry, never a substitute from another language.
type Provider interface {
	// CanDecomposeIntoParts reports whether names for the locale can be taken from a host formatter's labelled output. A Provider returning true must also implement PartsFormatter.
	CanDecomposeIntoParts(loc Locale) bool

	// MonthName returns the name of month 0 (January) through 11.
	MonthName(loc Locale, month int, style Style) (string, error)

	// WeekdayName returns the name of ISO weekday 1 (Monday) through 7.
	WeekdayName(loc Locale, weekday int, style Style) (string, error)

	DayPeriodName(loc Locale, am bool) (string, error)

	// CompositePattern returns the pattern a composite token such as "LL" or "LTS" stands for.
	CompositePattern(loc Locale, token string) (string, error)
}
