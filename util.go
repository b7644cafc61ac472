package datefmt

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// appendPadded appends the decimal representation of v, left-padded with zeros to at least width digits. The sign is not counted in width.
func appendPadded(b []byte, v, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	for n := strconv.LenInt(int64(v)); n < width; n++ {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(v))
}
