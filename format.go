package datefmt

import (
	"fmt"
	"time"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithProvider sets the locale data provider, the default is DefaultTables.
func WithProvider(p Provider) Option {
	return func(f *Formatter) {
		if p != nil {
			f.provider = p
		}
	}
}

// WithOffset sets the UTC offset in minutes that Format renders at. Without it, Format uses the zone of the time itself.
func WithOffset(minutes int) Option {
	return func(f *Formatter) {
		f.offset = &minutes
	}
}

// Formatter renders times with a pattern for a locale. Composite tokens are expanded and the pattern is tokenized once, and whether names come from a host formatter is decided once at construction. A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	pattern  string
	expanded string
	loc      Locale
	provider Provider
	parts    PartsFormatter // nil unless names are taken from the host
	offset   *int
	segments []Segment
}

// NewFormatter binds a pattern to a locale. It returns an error if a composite token in the pattern cannot be expanded for the locale.
func NewFormatter(pattern string, loc Locale, opts ...Option) (*Formatter, error) {
	f := &Formatter{
		pattern:  pattern,
		loc:      loc,
		provider: DefaultTables(),
	}
	for _, opt := range opts {
		opt(f)
	}

	expanded, err := Expand(pattern, loc, f.provider)
	if err != nil {
		return nil, err
	}
	f.expanded = expanded
	f.segments = Tokenize(expanded)

	if f.provider.CanDecomposeIntoParts(loc) {
		if parts, ok := f.provider.(PartsFormatter); ok {
			f.parts = parts
		} else {
			logf("provider %T can decompose %s but is not a PartsFormatter", f.provider, loc)
		}
	}
	return f, nil
}

// MustFormatter is like NewFormatter but panics on error.
func MustFormatter(pattern string, loc Locale, opts ...Option) *Formatter {
	f, err := NewFormatter(pattern, loc, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Pattern() string {
	return f.pattern
}

// Expanded returns the pattern after composite token expansion.
func (f *Formatter) Expanded() string {
	return f.expanded
}

func (f *Formatter) Locale() Locale {
	return f.loc
}

// UsesHost reports whether names are taken from the host formatter.
func (f *Formatter) UsesHost() bool {
	return f.parts != nil
}

// Format renders t in its own zone, or at the offset set by WithOffset.
func (f *Formatter) Format(t time.Time) (string, error) {
	b, err := f.AppendFormat(make([]byte, 0, len(f.expanded)+16), t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatOffset renders the instant t as observed at a fixed offset from UTC, given in minutes.
func (f *Formatter) FormatOffset(t time.Time, minutes int) (string, error) {
	b, err := f.appendFormat(make([]byte, 0, len(f.expanded)+16), t, &minutes)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendFormat is like Format but appends to b. On error b is returned unchanged.
func (f *Formatter) AppendFormat(b []byte, t time.Time) ([]byte, error) {
	return f.appendFormat(b, t, f.offset)
}

// FormatValue converts src with ParseTime and formats it.
func (f *Formatter) FormatValue(src any) (string, error) {
	t, err := ParseTime(src)
	if err != nil {
		return "", err
	}
	return f.Format(t)
}

func (f *Formatter) appendFormat(b []byte, t time.Time, offset *int) ([]byte, error) {
	if t.IsZero() {
		return b, fmt.Errorf("%w: zero time", ErrInvalidDate)
	}

	ctx := formatContext{t: t}
	if offset != nil {
		ctx.t = t.In(time.FixedZone("", *offset*60))
	}
	ctx.fields = Fields(ctx.t)
	if ctx.fields.Year < -9999 || 9999 < ctx.fields.Year {
		return b, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, ctx.fields.Year)
	}

	orig := len(b)
	for _, seg := range f.segments {
		var err error
		if b, err = f.appendSegment(b, seg, &ctx); err != nil {
			return b[:orig], err
		}
	}
	return b, nil
}

// Format renders t with a pattern for a locale in one call.
func Format(pattern string, t time.Time, loc Locale, opts ...Option) (string, error) {
	f, err := NewFormatter(pattern, loc, opts...)
	if err != nil {
		return "", err
	}
	return f.Format(t)
}
