package datefmt

// AppendOffset appends a UTC offset given in minutes as ±HH:MM, or as ±HHMM when colon is false. Positive and zero offsets get a plus sign.
func AppendOffset(b []byte, minutes int, colon bool) []byte {
	if minutes < 0 {
		b = append(b, '-')
		minutes = -minutes
	} else {
		b = append(b, '+')
	}
	b = appendPadded(b, minutes/60, 2)
	if colon {
		b = append(b, ':')
	}
	return appendPadded(b, minutes%60, 2)
}

// FormatOffset returns the UTC offset in minutes as ±HH:MM or ±HHMM.
func FormatOffset(minutes int, colon bool) string {
	return string(AppendOffset(make([]byte, 0, 6), minutes, colon))
}
