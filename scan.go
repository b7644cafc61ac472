package datefmt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParseTime converts a value to a time. It accepts a time.Time, Unix seconds as int64, the string "now", Unix seconds with a fraction such as "1414081845.25", and strings or byte slices of the forms yyyy-MM-dd, yyyy-MM-dd HH:mm[:ss[.fff]] and HH:mm[:ss[.fff]], where T may separate date and time. Date and time strings may end in Z or a ±HH:MM offset, otherwise they are UTC. Errors wrap ErrInvalidDate.
func ParseTime(src any) (time.Time, error) {
	var b []byte
	switch v := src.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return v, nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return time.Time{}, fmt.Errorf("%w: incompatible type %T", ErrInvalidDate, src)
	}

	if bytes.Equal(b, []byte("now")) {
		return time.Now().UTC(), nil
	}
	t, err := scanTime(b)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, b, err)
	}
	return t, nil
}

func scanTime(b []byte) (time.Time, error) {
	var year, month, day, hours, minutes, seconds uint64
	var fseconds float64
	year, month, day = 1, 1, 1

	first, n := strconv.ParseUint(b)
	if n == 0 {
		return time.Time{}, fmt.Errorf("expected number")
	}
	b = b[n:]

	if 0 < len(b) && b[0] == '.' {
		fseconds, n = strconv.ParseFloat(b)
		if n != len(b) {
			return time.Time{}, fmt.Errorf("invalid fraction")
		}
		return time.Unix(int64(first), int64(fseconds*1e9+0.5)).UTC(), nil
	}

	if 0 < len(b) && b[0] == '-' {
		year = first
		if n != 4 || year == 0 {
			return time.Time{}, fmt.Errorf("invalid year")
		}
		b = b[1:]
		month, n = strconv.ParseUint(b)
		if n != 2 || month == 0 || 12 < month {
			return time.Time{}, fmt.Errorf("invalid month")
		}
		b = b[n:]

		if len(b) == 0 || b[0] != '-' {
			return time.Time{}, fmt.Errorf("expected '-'")
		}
		b = b[1:]
		day, n = strconv.ParseUint(b)
		if n != 2 || day == 0 || daysIn(int(year), time.Month(month)) < int(day) {
			return time.Time{}, fmt.Errorf("invalid day")
		}
		b = b[n:]

		if len(b) == 0 {
			return time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC), nil
		} else if b[0] != ' ' && b[0] != 'T' {
			return time.Time{}, fmt.Errorf("expected 'T' or space")
		}
		b = b[1:]

		first, n = strconv.ParseUint(b)
		b = b[n:]
	}

	hours = first
	if n != 2 || 23 < hours {
		return time.Time{}, fmt.Errorf("invalid hours")
	}

	if len(b) == 0 || b[0] != ':' {
		return time.Time{}, fmt.Errorf("expected ':'")
	}
	b = b[1:]
	minutes, n = strconv.ParseUint(b)
	if n != 2 || 59 < minutes {
		return time.Time{}, fmt.Errorf("invalid minutes")
	}
	b = b[n:]

	if 0 < len(b) && b[0] == ':' {
		b = b[1:]
		seconds, n = strconv.ParseUint(b)
		if n != 2 || 59 < seconds {
			return time.Time{}, fmt.Errorf("invalid seconds")
		}
		b = b[n:]

		if 0 < len(b) && b[0] == '.' {
			fseconds, n = strconv.ParseFloat(b)
			b = b[n:]
		}
	}

	loc, err := scanZone(b)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(int(year), time.Month(month), int(day), int(hours), int(minutes), int(seconds), int(fseconds*1e9+0.5), loc), nil
}

// daysIn returns the number of days in the month of the year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// scanZone parses an empty suffix, Z or ±HH:MM.
func scanZone(b []byte) (*time.Location, error) {
	if len(b) == 0 || len(b) == 1 && b[0] == 'Z' {
		return time.UTC, nil
	} else if len(b) != 6 || b[0] != '+' && b[0] != '-' || b[3] != ':' {
		return nil, fmt.Errorf("invalid zone %q", b)
	}

	hours, n := strconv.ParseUint(b[1:3])
	if n != 2 || 23 < hours {
		return nil, fmt.Errorf("invalid zone hours")
	}
	minutes, n := strconv.ParseUint(b[4:])
	if n != 2 || 59 < minutes {
		return nil, fmt.Errorf("invalid zone minutes")
	}
	offset := int(hours*3600 + minutes*60)
	if b[0] == '-' {
		offset = -offset
	}
	return time.FixedZone("", offset), nil
}
