package datefmt

import (
	"strings"
	"time"
)

// formatContext holds the per call state of a format.
type formatContext struct {
	t      time.Time // already in the zone the fields are observed in
	fields DateFields
}

func (f *Formatter) appendSegment(b []byte, seg Segment, ctx *formatContext) ([]byte, error) {
	fields := &ctx.fields
	switch seg.Kind {
	case KindLiteral:
		return append(b, seg.Text...), nil
	case KindYear:
		if seg.Width <= 2 {
			year := fields.Year % 100
			if year < 0 {
				year += 100
			}
			return appendPadded(b, year, seg.Width), nil
		} else if seg.Width == 3 {
			return appendPadded(b, fields.Year, 1), nil
		}
		return appendPadded(b, fields.Year, seg.Width), nil
	case KindMonth:
		if seg.Width <= 2 {
			return appendPadded(b, fields.Month, seg.Width), nil
		}
		name, err := f.monthName(ctx, styleOf(seg.Width))
		if err != nil {
			return b, err
		}
		return append(b, name...), nil
	case KindDay:
		return appendPadded(b, fields.Day, seg.Width), nil
	case KindWeekday:
		if seg.Width <= 2 {
			return appendPadded(b, fields.WeekdayISO, seg.Width), nil
		}
		name, err := f.weekdayName(ctx, styleOf(seg.Width))
		if err != nil {
			return b, err
		}
		return append(b, name...), nil
	case KindHour24:
		return appendPadded(b, fields.Hour24, seg.Width), nil
	case KindHour12:
		return appendPadded(b, fields.Hour12, seg.Width), nil
	case KindHourK:
		return appendPadded(b, fields.HourK, seg.Width), nil
	case KindMinute:
		return appendPadded(b, fields.Minute, seg.Width), nil
	case KindSecond:
		return appendPadded(b, fields.Second, seg.Width), nil
	case KindFraction:
		return appendFraction(b, fields.Millisecond, seg.Width), nil
	case KindDayPeriod:
		name, err := f.dayPeriodName(ctx)
		if err != nil {
			return b, err
		}
		return append(b, name...), nil
	case KindOffset:
		return AppendOffset(b, fields.OffsetMinutes, seg.Width == 1), nil
	case KindWeek:
		return appendPadded(b, fields.Week(), seg.Width), nil
	case KindQuarter:
		return appendPadded(b, fields.Quarter(), seg.Width), nil
	}
	// unreachable for segments produced by Tokenize
	return append(b, seg.String()...), nil
}

// styleOf returns the name style for a token of width three or more.
func styleOf(width int) Style {
	if width == 3 {
		return Short
	}
	return Long
}

// appendFraction appends the milliseconds as the first width digits of a fraction of a second, padded with trailing zeros beyond three digits.
func appendFraction(b []byte, ms, width int) []byte {
	digits := [3]byte{byte('0' + ms/100), byte('0' + ms/10%10), byte('0' + ms%10)}
	if width <= 3 {
		return append(b, digits[:width]...)
	}
	b = append(b, digits[:]...)
	for i := 3; i < width; i++ {
		b = append(b, '0')
	}
	return b
}

func (f *Formatter) monthName(ctx *formatContext, style Style) (string, error) {
	if name, ok := f.hostPart(ctx, PartMonth, style); ok {
		return name, nil
	}
	return f.provider.MonthName(f.loc, ctx.fields.Month-1, style)
}

func (f *Formatter) weekdayName(ctx *formatContext, style Style) (string, error) {
	if name, ok := f.hostPart(ctx, PartWeekday, style); ok {
		return name, nil
	}
	return f.provider.WeekdayName(f.loc, ctx.fields.WeekdayISO, style)
}

// dayPeriodName prefers the host's day period, but takes the casing of the tables when both name the same period, so that "pm" from the host renders as "PM" where the tables say so.
func (f *Formatter) dayPeriodName(ctx *formatContext) (string, error) {
	name, ok := f.hostPart(ctx, PartDayPeriod, Short)
	table, err := f.provider.DayPeriodName(f.loc, ctx.fields.Hour24 < 12)
	if !ok {
		return table, err
	} else if err == nil && strings.EqualFold(name, table) {
		return table, nil
	}
	return name, nil
}

// hostPart returns the part of the given type from the host decomposition, if the formatter resolved to use the host and the host output contains that part.
func (f *Formatter) hostPart(ctx *formatContext, field PartType, style Style) (string, bool) {
	if f.parts == nil {
		return "", false
	}
	parts, err := f.parts.FormatToParts(f.loc, ctx.t, field, style)
	if err != nil {
		logf("host formatter for %s: %v, using tables", f.loc, err)
		return "", false
	}
	for _, part := range parts {
		if part.Type == field {
			return part.Value, true
		}
	}
	logf("no %s %s part in host output for %s, using tables", style, field, f.loc)
	return "", false
}
