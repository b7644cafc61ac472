package datefmt

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/locales/es"
	"github.com/tdewolff/test"
)

func captureLog(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := logger
	SetLogger(log.New(buf, "", 0))
	t.Cleanup(func() {
		SetLogger(prev)
	})
	return buf
}

func TestDecomposeNames(t *testing.T) {
	var tests = []struct {
		s     string
		names []string
		parts []Part
	}{
		{"October 23, 2014", []string{"September", "October"}, []Part{{PartMonth, "October"}, {PartLiteral, " "}, {PartNumeric, "23"}, {PartLiteral, ", "}, {PartNumeric, "2014"}}},
		{"23 de octubre de 2014", es.New().MonthsWide(), []Part{{PartNumeric, "23"}, {PartLiteral, " de "}, {PartMonth, "octubre"}, {PartLiteral, " de "}, {PartNumeric, "2014"}}},
		{"Marching 3", []string{"Mar", "March"}, []Part{{PartLiteral, "Marching "}, {PartNumeric, "3"}}},
		{"3 Mar. 2014", []string{"Mar", "Mar."}, []Part{{PartNumeric, "3"}, {PartLiteral, " "}, {PartMonth, "Mar."}, {PartLiteral, " "}, {PartNumeric, "2014"}}},
		{"23.10.2014", []string{"Okt."}, []Part{{PartNumeric, "23"}, {PartLiteral, "."}, {PartNumeric, "10"}, {PartLiteral, "."}, {PartNumeric, "2014"}}},
		{"", []string{"Okt."}, []Part{}},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, decomposeNames(tt.s, PartMonth, tt.names), tt.parts)
		})
	}
}

func TestDecomposePeriod(t *testing.T) {
	var tests = []struct {
		s     string
		parts []Part
	}{
		{"4:30 pm", []Part{{PartNumeric, "4"}, {PartLiteral, ":"}, {PartNumeric, "30"}, {PartLiteral, " "}, {PartDayPeriod, "pm"}}},
		{"9:00 a.\u00a0m.", []Part{{PartNumeric, "9"}, {PartLiteral, ":"}, {PartNumeric, "00"}, {PartLiteral, " "}, {PartDayPeriod, "a.\u00a0m."}}},
		{"下午4:30", []Part{{PartDayPeriod, "下午"}, {PartNumeric, "4"}, {PartLiteral, ":"}, {PartNumeric, "30"}}},
		{"16:30", []Part{{PartNumeric, "16"}, {PartLiteral, ":"}, {PartNumeric, "30"}}},
		{"16 h 30", []Part{{PartNumeric, "16"}, {PartLiteral, " h "}, {PartNumeric, "30"}}},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, decomposePeriod(tt.s), tt.parts)
		})
	}
}

func TestTranslatorHostSupports(t *testing.T) {
	host := NewTranslatorHost()
	for _, id := range []string{"en", "en-US", "en-AU", "en-GB", "de", "de-AT", "es-MX", "fr", "nl"} {
		test.That(t, host.Supports(MustLocale(id)), id)
	}
	test.That(t, !host.Supports(MustLocale("ja")))
	test.That(t, !host.Supports(Locale{}))

	host = NewTranslatorHost(es.New())
	test.That(t, host.Supports(MustLocale("es-ES")))
	test.That(t, !host.Supports(enUS))
}

func TestTranslatorHostFormatToParts(t *testing.T) {
	host := NewTranslatorHost()
	var tests = []struct {
		locale string
		field  PartType
		style  Style
		parts  []Part
	}{
		{"en-US", PartMonth, Long, []Part{{PartMonth, "October"}, {PartLiteral, " "}, {PartNumeric, "23"}, {PartLiteral, ", "}, {PartNumeric, "2014"}}},
		{"en-US", PartMonth, Short, []Part{{PartMonth, "Oct"}, {PartLiteral, " "}, {PartNumeric, "23"}, {PartLiteral, ", "}, {PartNumeric, "2014"}}},
		{"en-US", PartWeekday, Long, []Part{{PartWeekday, "Thursday"}, {PartLiteral, ", October "}, {PartNumeric, "23"}, {PartLiteral, ", "}, {PartNumeric, "2014"}}},
		{"en-US", PartWeekday, Short, []Part{{PartWeekday, "Thu"}}},
		{"en-US", PartDayPeriod, Short, []Part{{PartNumeric, "4"}, {PartLiteral, ":"}, {PartNumeric, "30"}, {PartLiteral, " "}, {PartDayPeriod, "pm"}}},
		{"de", PartMonth, Short, []Part{{PartNumeric, "23"}, {PartLiteral, "."}, {PartNumeric, "10"}, {PartLiteral, "."}, {PartNumeric, "2014"}}},
		{"es", PartMonth, Long, []Part{{PartNumeric, "23"}, {PartLiteral, " de "}, {PartMonth, "octubre"}, {PartLiteral, " de "}, {PartNumeric, "2014"}}},
		{"fr", PartDayPeriod, Short, []Part{{PartNumeric, "16"}, {PartLiteral, ":"}, {PartNumeric, "30"}}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s %s", tt.locale, tt.field, tt.style), func(t *testing.T) {
			parts, err := host.FormatToParts(MustLocale(tt.locale), date, tt.field, tt.style)
			test.Error(t, err)
			test.T(t, parts, tt.parts)
		})
	}

	_, err := host.FormatToParts(MustLocale("ja"), date, PartMonth, Long)
	test.That(t, errors.Is(err, ErrLocaleDataMissing), err)
	_, err = host.FormatToParts(enUS, date, PartNumeric, Long)
	test.That(t, err != nil)
}

func TestFormatHost(t *testing.T) {
	tables, err := NewTables(WithHost(NewTranslatorHost()))
	test.Error(t, err)

	var tests = []struct {
		locale  string
		pattern string
		str     string
	}{
		{"en-US", "MMM dd, yyyy h:mm:ss a", "Oct 23, 2014 4:30:45 PM"},
		{"en-US", "LLLL", "Thursday, October 23, 2014, 4:30 PM"},
		{"en-US", "llll", "Thu, Oct 23, 2014, 4:30 PM"},
		{"en-GB", "LLLL", "Thursday, 23 October 2014, 16:30"},
		{"en-GB", "h a", "4 PM"},
		{"de", "EEEE, dd. MMMM yyyy", "Donnerstag, 23. Oktober 2014"},
		{"de", "EEE, d. MMM", "Do., 23. Okt."},
		{"es", "EEEE dd MMMM h:mm a", "jueves 23 octubre 4:30 p.\u00a0m."},
		{"fr", "LLLL", "jeudi 23 octobre 2014 16:30"},
		{"nl", "EEEE d MMM", "donderdag 23 okt."},
	}
	for _, tt := range tests {
		t.Run(tt.locale+" "+tt.pattern, func(t *testing.T) {
			f, err := NewFormatter(tt.pattern, MustLocale(tt.locale), WithProvider(tables))
			test.Error(t, err)
			test.That(t, f.UsesHost())

			s, err := f.Format(date)
			test.Error(t, err)
			test.String(t, s, tt.str)
		})
	}

	// no translator for ja, so the capability flag is off
	f, err := NewFormatter("yyyy", MustLocale("ja"), WithProvider(tables))
	test.Error(t, err)
	test.That(t, !f.UsesHost())
}

func TestFormatHostMatchesTables(t *testing.T) {
	tables, err := NewTables(WithHost(NewTranslatorHost()))
	test.Error(t, err)

	patterns := []string{"MMM dd, yyyy h:mm:ss a", "MMMM EEEE EEE a", "LT", "LTS", "L", "LL", "LLL", "LLLL", "l", "ll", "lll", "llll"}
	times := []time.Time{date, time.Date(2014, 9, 23, 4, 30, 45, 0, time.UTC), time.Date(2015, 1, 4, 0, 0, 0, 0, time.UTC)}
	for _, id := range []string{"en", "en-US", "en-GB", "de", "es", "fr", "nl"} {
		loc := MustLocale(id)
		for _, pattern := range patterns {
			for _, tm := range times {
				want, err := Format(pattern, tm, loc)
				test.Error(t, err)
				got, err := Format(pattern, tm, loc, WithProvider(tables))
				test.Error(t, err)
				test.String(t, got, want, id, pattern, tm)
			}
		}
	}
}

func TestFormatHostDayPeriodCase(t *testing.T) {
	host := &fakeHost{
		supported: true,
		parts:     []Part{{PartNumeric, "4"}, {PartLiteral, " "}, {PartDayPeriod, "pm"}},
	}
	tables, err := NewTables(WithHost(host))
	test.Error(t, err)

	s, err := Format("h a", date, enUS, WithProvider(tables))
	test.Error(t, err)
	test.String(t, s, "4 PM")

	// a period the tables do not know is kept as given by the host
	host.parts = []Part{{PartDayPeriod, "in the afternoon"}}
	s, err = Format("h a", date, enUS, WithProvider(tables))
	test.Error(t, err)
	test.String(t, s, "4 in the afternoon")
}

func TestFormatHostFallback(t *testing.T) {
	buf := captureLog(t)
	tables, err := NewTables(WithHost(NewTranslatorHost()))
	test.Error(t, err)

	// the medium German date is numeric
	s, err := Format("MMM", date, MustLocale("de"), WithProvider(tables))
	test.Error(t, err)
	test.String(t, s, "Okt.")
	test.That(t, strings.Contains(buf.String(), "INFO: datefmt: no short month part in host output for de, using tables"), buf.String())
}

type fakeHost struct {
	supported bool
	parts     []Part
	err       error
}

func (h *fakeHost) Supports(loc Locale) bool {
	return h.supported
}

func (h *fakeHost) FormatToParts(loc Locale, t time.Time, field PartType, style Style) ([]Part, error) {
	return h.parts, h.err
}

func TestFormatFakeHost(t *testing.T) {
	buf := captureLog(t)
	host := &fakeHost{
		supported: true,
		parts:     []Part{{PartLiteral, "<"}, {PartMonth, "OCT"}, {PartDayPeriod, "p"}},
	}
	tables, err := NewTables(WithHost(host))
	test.Error(t, err)
	test.That(t, tables.CanDecomposeIntoParts(enUS))

	f := MustFormatter("MMMM EEE a", enUS, WithProvider(tables))
	s, err := f.Format(date)
	test.Error(t, err)
	test.String(t, s, "OCT Thu p")
	test.That(t, strings.Contains(buf.String(), "no short weekday part"), buf.String())

	// the flag is resolved once
	host.supported = false
	s, err = f.Format(date)
	test.Error(t, err)
	test.String(t, s, "OCT Thu p")

	f = MustFormatter("MMMM", enUS, WithProvider(tables))
	test.That(t, !f.UsesHost())
	s, err = f.Format(date)
	test.Error(t, err)
	test.String(t, s, "October")

	// host errors fall back to the tables
	host.supported = true
	host.err = errors.New("host unavailable")
	s, err = Format("MMMM", date, enUS, WithProvider(tables))
	test.Error(t, err)
	test.String(t, s, "October")
	test.That(t, strings.Contains(buf.String(), "host unavailable"), buf.String())
}

type decomposingProvider struct {
	Provider
}

func (decomposingProvider) CanDecomposeIntoParts(loc Locale) bool {
	return true
}

func TestFormatNotPartsFormatter(t *testing.T) {
	buf := captureLog(t)
	f, err := NewFormatter("MMMM", enUS, WithProvider(decomposingProvider{DefaultTables()}))
	test.Error(t, err)
	test.That(t, !f.UsesHost())
	test.That(t, strings.Contains(buf.String(), "not a PartsFormatter"), buf.String())

	s, err := f.Format(date)
	test.Error(t, err)
	test.String(t, s, "October")
}

func TestSetLogger(t *testing.T) {
	prev := logger
	defer SetLogger(prev)

	SetLogger(nil)
	logf("discarded")

	buf := &bytes.Buffer{}
	SetLogger(log.New(buf, "", 0))
	logf("value %d", 5)
	test.String(t, buf.String(), "INFO: datefmt: value 5\n")
}
