package datefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Languager is implemented by the fmt.State that golang.org/x/text/message printers pass to formatters.
type Languager interface {
	Language() language.Tag
}

// PatternFormatter formats a time with a pattern when printed through fmt. The locale is taken from the fmt.State if it implements Languager, such as with a message.Printer. Errors are printed as %!v(error).
type PatternFormatter struct {
	time.Time
	Pattern  string
	Provider Provider // DefaultTables when nil
}

func (f PatternFormatter) Format(state fmt.State, verb rune) {
	loc := LocaleFromTag(language.Und)
	if languager, ok := state.(Languager); ok {
		loc = LocaleFromTag(languager.Language())
	}

	s, err := Format(f.Pattern, f.Time, loc, WithProvider(f.Provider))
	if err != nil {
		fmt.Fprintf(state, "%%!%c(%v)", verb, err)
		return
	}
	state.Write([]byte(s))
}

// Printer is a message.Printer that also formats times with patterns in a location.
type Printer struct {
	*message.Printer

	LanguageTag language.Tag
	Location    *time.Location
	Provider    Provider
}

func NewPrinter(tag language.Tag, loc *time.Location) *Printer {
	return &Printer{
		Printer: message.NewPrinter(tag),

		LanguageTag: tag,
		Location:    loc,
		Provider:    DefaultTables(),
	}
}

// Locale returns the locale of the printer's language.
func (p *Printer) Locale() Locale {
	return LocaleFromTag(p.LanguageTag)
}

// T translates and formats its arguments. A string first argument is a format string for the remaining arguments. A time.Time or int64 Unix time followed by a pattern is rendered in the printer's location.
func (p *Printer) T(a ...any) string {
	if len(a) == 0 {
		return ""
	} else if s, ok := a[0].(string); ok {
		return p.Sprintf(s, a[1:]...)
	} else if len(a) == 2 {
		if pattern, ok := a[1].(string); ok {
			switch v := a[0].(type) {
			case time.Time:
				return p.Sprintf("%v", PatternFormatter{v.In(p.Location), pattern, p.Provider})
			case int64:
				return p.Sprintf("%v", PatternFormatter{time.Unix(v, 0).In(p.Location), pattern, p.Provider})
			}
		}
	}
	return p.Sprint(a...)
}

// Format renders t in the printer's location and returns any error instead of printing it.
func (p *Printer) Format(t time.Time, pattern string) (string, error) {
	return Format(pattern, t.In(p.Location), p.Locale(), WithProvider(p.Provider))
}
