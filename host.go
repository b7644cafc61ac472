package datefmt

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/nl"
)

// PartType labels a piece of formatted output.
type PartType uint8

const (
	PartLiteral PartType = iota
	PartNumeric
	PartMonth
	PartWeekday
	PartDayPeriod
)

func (pt PartType) String() string {
	switch pt {
	case PartLiteral:
		return "literal"
	case PartNumeric:
		return "numeric"
	case PartMonth:
		return "month"
	case PartWeekday:
		return "weekday"
	case PartDayPeriod:
		return "dayPeriod"
	}
	return fmt.Sprintf("PartType(%d)", uint8(pt))
}

// Part is a labelled piece of host formatted output.
type Part struct {
	Type  PartType
	Value string
}

// PartsFormatter is a host formatting primitive that formats a date natively and decomposes the result into labelled parts. The field and style select the native format used, one that contains the requested part where the locale has one. A part that no native format contains may be returned on its own.
type PartsFormatter interface {
	Supports(loc Locale) bool
	FormatToParts(loc Locale, t time.Time, field PartType, style Style) ([]Part, error)
}

// TranslatorHost is a PartsFormatter backed by go-playground locale translators.
type TranslatorHost struct {
	translators map[string]locales.Translator
}

// NewTranslatorHost returns a host for the given translators, or for en, en-US, en-GB, de, es, fr and nl when none are given.
func NewTranslatorHost(translators ...locales.Translator) *TranslatorHost {
	if len(translators) == 0 {
		translators = []locales.Translator{en.New(), en_US.New(), en_GB.New(), de.New(), es.New(), fr.New(), nl.New()}
	}

	h := &TranslatorHost{
		translators: make(map[string]locales.Translator, len(translators)),
	}
	for _, tr := range translators {
		loc, err := NewLocale(tr.Locale())
		if err != nil {
			logf("skipping translator %s: %v", tr.Locale(), err)
			continue
		}
		h.translators[loc.ID()] = tr
	}
	return h
}

func (h *TranslatorHost) translator(loc Locale) locales.Translator {
	for _, id := range loc.Candidates() {
		if tr, ok := h.translators[id]; ok {
			return tr
		}
	}
	return nil
}

func (h *TranslatorHost) Supports(loc Locale) bool {
	return h.translator(loc) != nil
}

// FormatToParts formats t with the translator's long date for long month names, medium date for short month names, full date for long weekday names and short time for day periods. None of the translator's date formats contains the abbreviated weekday, so a short weekday is the translator's abbreviated name as a single part.
func (h *TranslatorHost) FormatToParts(loc Locale, t time.Time, field PartType, style Style) ([]Part, error) {
	tr := h.translator(loc)
	if tr == nil {
		return nil, fmt.Errorf("%w: no translator for %s", ErrLocaleDataMissing, loc)
	}

	switch field {
	case PartMonth:
		if style == Long {
			return decomposeNames(tr.FmtDateLong(t), PartMonth, tr.MonthsWide()), nil
		}
		return decomposeNames(tr.FmtDateMedium(t), PartMonth, tr.MonthsAbbreviated()), nil
	case PartWeekday:
		if style == Long {
			return decomposeNames(tr.FmtDateFull(t), PartWeekday, tr.WeekdaysWide()), nil
		}
		return []Part{{PartWeekday, tr.WeekdayAbbreviated(t.Weekday())}}, nil
	case PartDayPeriod:
		return decomposePeriod(tr.FmtTimeShort(t)), nil
	}
	return nil, fmt.Errorf("datefmt: cannot format %s to parts", field)
}

// splitDigits splits s into numeric and literal parts.
func splitDigits(s string) []Part {
	parts := []Part{}
	for i := 0; i < len(s); {
		j := i
		numeric := '0' <= s[i] && s[i] <= '9'
		for j < len(s) && ('0' <= s[j] && s[j] <= '9') == numeric {
			j++
		}
		if numeric {
			parts = append(parts, Part{PartNumeric, s[i:j]})
		} else {
			parts = append(parts, Part{PartLiteral, s[i:j]})
		}
		i = j
	}
	return parts
}

// decomposeNames labels the occurrences of names in the literal parts of s as field. Names must stand on their own, not be part of a longer word.
func decomposeNames(s string, field PartType, names []string) []Part {
	parts := []Part{}
	for _, part := range splitDigits(s) {
		if part.Type != PartLiteral {
			parts = append(parts, part)
			continue
		}

		text := part.Value
		lit := 0
		for i := 0; i < len(text); {
			if name := matchName(text, i, names); name != "" {
				if lit < i {
					parts = append(parts, Part{PartLiteral, text[lit:i]})
				}
				parts = append(parts, Part{field, name})
				i += len(name)
				lit = i
				continue
			}
			_, n := utf8.DecodeRuneInString(text[i:])
			i += n
		}
		if lit < len(text) {
			parts = append(parts, Part{PartLiteral, text[lit:]})
		}
	}
	return parts
}

// matchName returns the longest name that starts at s[i] on a word boundary.
func matchName(s string, i int, names []string) string {
	if r, _ := utf8.DecodeLastRuneInString(s[:i]); 0 < i && unicode.IsLetter(r) {
		return ""
	}
	match := ""
	for _, name := range names {
		if len(match) < len(name) && strings.HasPrefix(s[i:], name) {
			if r, _ := utf8.DecodeRuneInString(s[i+len(name):]); i+len(name) < len(s) && unicode.IsLetter(r) {
				continue
			}
			match = name
		}
	}
	return match
}

// decomposePeriod labels the text before the first or after the last digits of a formatted time as the day period, such as "pm" in "4:30 pm".
func decomposePeriod(s string) []Part {
	keep := func(r rune) bool {
		return !unicode.IsSpace(r) && (!unicode.IsPunct(r) || r == '.')
	}

	parts := []Part{}
	split := splitDigits(s)
	for i, part := range split {
		if part.Type != PartLiteral || 0 < i && i < len(split)-1 || strings.IndexFunc(part.Value, unicode.IsLetter) == -1 {
			parts = append(parts, part)
			continue
		}

		text := part.Value
		start := strings.IndexFunc(text, keep)
		end := strings.LastIndexFunc(text, keep)
		_, n := utf8.DecodeRuneInString(text[end:])
		end += n
		if 0 < start {
			parts = append(parts, Part{PartLiteral, text[:start]})
		}
		parts = append(parts, Part{PartDayPeriod, text[start:end]})
		if end < len(text) {
			parts = append(parts, Part{PartLiteral, text[end:]})
		}
	}
	return parts
}
