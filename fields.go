package datefmt

import (
	"time"
)

// DateFields holds the calendar fields of a point in time as observed in one zone.
type DateFields struct {
	Year          int
	Month         int // 1-12
	Day           int // 1-31
	Hour24        int // 0-23
	Hour12        int // 1-12
	HourK         int // 1-24
	Minute        int
	Second        int
	Millisecond   int
	WeekdayISO    int // 1 is Monday, 7 is Sunday
	DayOfYear     int // 1-366
	OffsetMinutes int
}

// Fields extracts the calendar fields of t in its own location.
func Fields(t time.Time) DateFields {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	_, offset := t.Zone()

	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	hourK := hour
	if hourK == 0 {
		hourK = 24
	}
	return DateFields{
		Year:          year,
		Month:         int(month),
		Day:           day,
		Hour24:        hour,
		Hour12:        hour12,
		HourK:         hourK,
		Minute:        minute,
		Second:        second,
		Millisecond:   t.Nanosecond() / 1e6,
		WeekdayISO:    weekday,
		DayOfYear:     t.YearDay(),
		OffsetMinutes: offset / 60,
	}
}

// FieldsAt extracts the calendar fields of the instant t as observed at a fixed offset from UTC, given in minutes.
func FieldsAt(t time.Time, minutes int) DateFields {
	return Fields(t.In(time.FixedZone("", minutes*60)))
}

// Week returns the week of the year as ceil(DayOfYear/7), without regard to the first day of the week.
func (f DateFields) Week() int {
	return (f.DayOfYear + 6) / 7
}

// Quarter returns ceil(Month/3).
func (f DateFields) Quarter() int {
	return (f.Month + 2) / 3
}
