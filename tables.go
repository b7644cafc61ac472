package datefmt

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

type nameTable struct {
	Short []string `yaml:"short,omitempty"`
	Long  []string `yaml:"long,omitempty"`
}

func (t nameTable) get(style Style) []string {
	if style == Long {
		return t.Long
	}
	return t.Short
}

type localeTable struct {
	Months   nameTable         `yaml:"months,omitempty"`
	Weekdays nameTable         `yaml:"weekdays,omitempty"`
	Periods  []string          `yaml:"periods,omitempty,flow"`
	Patterns map[string]string `yaml:"patterns,omitempty"`
}

func (lt *localeTable) validate() error {
	if n := len(lt.Months.Short); n != 0 && n != 12 {
		return fmt.Errorf("%d short month names", n)
	} else if n := len(lt.Months.Long); n != 0 && n != 12 {
		return fmt.Errorf("%d long month names", n)
	} else if n := len(lt.Weekdays.Short); n != 0 && n != 7 {
		return fmt.Errorf("%d short weekday names", n)
	} else if n := len(lt.Weekdays.Long); n != 0 && n != 7 {
		return fmt.Errorf("%d long weekday names", n)
	} else if n := len(lt.Periods); n != 0 && n != 2 {
		return fmt.Errorf("%d day periods", n)
	}
	for token := range lt.Patterns {
		if !containsString(CompositeTokens, token) {
			return fmt.Errorf("unknown composite token %q", token)
		}
	}
	return nil
}

// merge overwrites the entries of lt that are set in src.
func (lt *localeTable) merge(src *localeTable) {
	if src.Months.Short != nil {
		lt.Months.Short = src.Months.Short
	}
	if src.Months.Long != nil {
		lt.Months.Long = src.Months.Long
	}
	if src.Weekdays.Short != nil {
		lt.Weekdays.Short = src.Weekdays.Short
	}
	if src.Weekdays.Long != nil {
		lt.Weekdays.Long = src.Weekdays.Long
	}
	if src.Periods != nil {
		lt.Periods = src.Periods
	}
	for token, pattern := range src.Patterns {
		if lt.Patterns == nil {
			lt.Patterns = map[string]string{}
		}
		lt.Patterns[token] = pattern
	}
}

// Tables is the default Provider. It serves name tables and composite patterns decoded from YAML, where a locale falls back to its parents entry by entry, so that en-US uses the tables of en. With a host attached through WithHost, Tables also implements PartsFormatter by delegating to the host.
type Tables struct {
	locales map[string]*localeTable
	host    PartsFormatter
}

type TablesOption func(*Tables) error

// WithTablesYAML merges tables in the format of the embedded tables.yaml over the existing ones.
func WithTablesYAML(data []byte) TablesOption {
	return func(t *Tables) error {
		return t.merge(data)
	}
}

// WithHost attaches a host formatter that names are preferably taken from.
func WithHost(h PartsFormatter) TablesOption {
	return func(t *Tables) error {
		t.host = h
		return nil
	}
}

// NewTables returns the embedded tables with the options applied.
func NewTables(opts ...TablesOption) (*Tables, error) {
	t := &Tables{
		locales: map[string]*localeTable{},
	}
	if err := t.merge(tablesYAML); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

var defaultTables = func() *Tables {
	t, err := NewTables()
	if err != nil {
		panic(err)
	}
	return t
}()

// DefaultTables returns the embedded tables without a host. It is used by formatters that have no provider set.
func DefaultTables() *Tables {
	return defaultTables
}

func (t *Tables) merge(data []byte) error {
	src := map[string]*localeTable{}
	if err := yaml.Unmarshal(data, &src); err != nil {
		return fmt.Errorf("datefmt: tables: %w", err)
	}
	for id, lt := range src {
		if lt == nil {
			continue
		}
		loc, err := NewLocale(id)
		if err != nil {
			return fmt.Errorf("datefmt: tables: %w", err)
		} else if err := lt.validate(); err != nil {
			return fmt.Errorf("datefmt: tables for %s: %v", loc, err)
		}

		dst, ok := t.locales[loc.ID()]
		if !ok {
			dst = &localeTable{}
			t.locales[loc.ID()] = dst
		}
		dst.merge(lt)
	}
	return nil
}

// Locales returns the identifiers that have tables, sorted.
func (t *Tables) Locales() []string {
	ids := make([]string, 0, len(t.locales))
	for id := range t.locales {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalYAML allows writing the tables back in the format they are read in.
func (t *Tables) MarshalYAML() (interface{}, error) {
	return t.locales, nil
}

func (t *Tables) lookup(loc Locale, has func(*localeTable) bool) *localeTable {
	for _, id := range loc.Candidates() {
		if lt, ok := t.locales[id]; ok && has(lt) {
			return lt
		}
	}
	return nil
}

func (t *Tables) CanDecomposeIntoParts(loc Locale) bool {
	return t.Supports(loc)
}

func (t *Tables) MonthName(loc Locale, month int, style Style) (string, error) {
	if month < 0 || 11 < month {
		return "", fmt.Errorf("%w: month %d", ErrLocaleDataMissing, month)
	}
	lt := t.lookup(loc, func(lt *localeTable) bool { return lt.Months.get(style) != nil })
	if lt == nil {
		return "", fmt.Errorf("%w: %s month names for %s", ErrLocaleDataMissing, style, loc)
	}
	return lt.Months.get(style)[month], nil
}

func (t *Tables) WeekdayName(loc Locale, weekday int, style Style) (string, error) {
	if weekday < 1 || 7 < weekday {
		return "", fmt.Errorf("%w: weekday %d", ErrLocaleDataMissing, weekday)
	}
	lt := t.lookup(loc, func(lt *localeTable) bool { return lt.Weekdays.get(style) != nil })
	if lt == nil {
		return "", fmt.Errorf("%w: %s weekday names for %s", ErrLocaleDataMissing, style, loc)
	}
	return lt.Weekdays.get(style)[weekday-1], nil
}

func (t *Tables) DayPeriodName(loc Locale, am bool) (string, error) {
	lt := t.lookup(loc, func(lt *localeTable) bool { return lt.Periods != nil })
	if lt == nil {
		return "", fmt.Errorf("%w: day periods for %s", ErrLocaleDataMissing, loc)
	} else if am {
		return lt.Periods[0], nil
	}
	return lt.Periods[1], nil
}

func (t *Tables) CompositePattern(loc Locale, token string) (string, error) {
	lt := t.lookup(loc, func(lt *localeTable) bool {
		_, ok := lt.Patterns[token]
		return ok
	})
	if lt == nil {
		return "", fmt.Errorf("%w: composite pattern %s for %s", ErrLocaleDataMissing, token, loc)
	}
	return lt.Patterns[token], nil
}

// Supports reports whether a host is attached and supports the locale.
func (t *Tables) Supports(loc Locale) bool {
	return t.host != nil && t.host.Supports(loc)
}

func (t *Tables) FormatToParts(loc Locale, tm time.Time, field PartType, style Style) ([]Part, error) {
	if t.host == nil {
		return nil, fmt.Errorf("%w: no host formatter for %s", ErrLocaleDataMissing, loc)
	}
	return t.host.FormatToParts(loc, tm, field, style)
}
