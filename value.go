package datefmt

import (
	"database/sql/driver"
	"time"
)

// Datetime is a time that scans from and is stored in a database as text, such as "2014-10-23 16:30:45".
type Datetime time.Time

// String formats the datetime as yyyy-MM-dd HH:mm, adding seconds and milliseconds only when they are non-zero.
func (t Datetime) String() string {
	pattern := "yyyy-MM-dd HH:mm"
	if time.Time(t).Nanosecond()/1e6 != 0 {
		pattern = "yyyy-MM-dd HH:mm:ss.SSS"
	} else if time.Time(t).Second() != 0 {
		pattern = "yyyy-MM-dd HH:mm:ss"
	}
	s, err := Format(pattern, time.Time(t), Locale{})
	if err != nil {
		return ""
	}
	return s
}

// Scan implements sql.Scanner, accepting the values of ParseTime.
func (t *Datetime) Scan(isrc interface{}) error {
	if isrc == nil {
		*t = Datetime{}
		return nil
	}
	src, err := ParseTime(isrc)
	if err != nil {
		return err
	}
	*t = Datetime(src)
	return nil
}

// Value implements driver.Valuer, the zero datetime is stored as NULL.
func (t Datetime) Value() (driver.Value, error) {
	if time.Time(t).IsZero() {
		return nil, nil
	}
	return t.String(), nil
}
