package datefmt

import (
	"strings"

	"github.com/xuri/nfp"
)

// layoutElements maps elements of Go time layouts to pattern tokens. Longer elements are listed before their prefixes.
var layoutElements = []struct {
	layout, pattern string
}{
	{"January", "MMMM"},
	{"Jan", "MMM"},
	{"Monday", "EEEE"},
	{"Mon", "EEE"},
	{"2006", "yyyy"},
	{"Z07:00", "Z"},
	{"Z0700", "ZZ"},
	{"-07:00", "Z"},
	{"-0700", "ZZ"},
	{".000", ".SSS"},
	{".999", ".SSS"},
	{".00", ".SS"},
	{".99", ".SS"},
	{".0", ".S"},
	{".9", ".S"},
	{",000", ",SSS"},
	{"06", "yy"},
	{"01", "MM"},
	{"02", "dd"},
	{"_2", "d"},
	{"15", "HH"},
	{"03", "hh"},
	{"04", "mm"},
	{"05", "ss"},
	{"PM", "a"},
	{"pm", "a"},
	{"1", "M"},
	{"2", "d"},
	{"3", "h"},
	{"4", "m"},
	{"5", "s"},
}

// FromLayout converts a Go reference time layout such as "2006-01-02 15:04" to a pattern such as "yyyy-MM-dd HH:mm". Other text is copied, so letters in it that are pattern tokens are read as tokens.
func FromLayout(layout string) string {
	sb := strings.Builder{}
	for i := 0; i < len(layout); {
		matched := false
		for _, elem := range layoutElements {
			if strings.HasPrefix(layout[i:], elem.layout) {
				sb.WriteString(elem.pattern)
				i += len(elem.layout)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(layout[i])
			i++
		}
	}
	return sb.String()
}

// FromExcel converts the first section of a spreadsheet number format such as "m/d/yyyy h:mm AM/PM" to a pattern. M and MM are minutes directly after an hour or before a second and months otherwise, and hours follow the 12-hour cycle if the format has AM/PM. Colors, conditions and locale codes are dropped.
func FromExcel(numFmt string) string {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(numFmt)
	if len(sections) == 0 {
		return ""
	}
	items := sections[0].Items

	hasAmPm := false
	for _, tok := range items {
		if tok.TType == nfp.TokenTypeDateTimes {
			if upper := strings.ToUpper(tok.TValue); upper == "AM/PM" || upper == "A/P" {
				hasAmPm = true
				break
			}
		}
	}

	sb := strings.Builder{}
	lastWasHour, lastWasSecond := false, false
	for i, tok := range items {
		upper := strings.ToUpper(tok.TValue)
		switch tok.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			minute := lastWasHour || nextIsSecond(items[i+1:])
			sb.WriteString(excelToken(upper, hasAmPm, minute))
			lastWasHour = upper == "H" || upper == "HH"
			lastWasSecond = upper == "S" || upper == "SS"
		case nfp.TokenTypeDecimalPoint:
			sb.WriteString(tok.TValue)
		case nfp.TokenTypeZeroPlaceHolder:
			if lastWasSecond {
				sb.WriteString(strings.Repeat("S", len(tok.TValue)))
			} else {
				sb.WriteString(tok.TValue)
			}
		case nfp.TokenTypeLiteral:
			// separators keep the hour context for the minute check
			sb.WriteString(tok.TValue)
		default:
			lastWasHour, lastWasSecond = false, false
		}
	}
	return sb.String()
}

func nextIsSecond(items []nfp.Token) bool {
	for _, tok := range items {
		if tok.TType == nfp.TokenTypeDateTimes || tok.TType == nfp.TokenTypeElapsedDateTimes {
			upper := strings.ToUpper(tok.TValue)
			return upper == "S" || upper == "SS"
		}
	}
	return false
}

func excelToken(upper string, hasAmPm, minute bool) string {
	switch upper {
	case "YYYY", "YYY":
		return "yyyy"
	case "YY", "Y":
		return "yy"
	case "MMMMM", "MMMM":
		return "MMMM"
	case "MMM":
		return "MMM"
	case "MM":
		if minute {
			return "mm"
		}
		return "MM"
	case "M":
		if minute {
			return "m"
		}
		return "M"
	case "DDDD":
		return "EEEE"
	case "DDD":
		return "EEE"
	case "DD":
		return "dd"
	case "D":
		return "d"
	case "HH":
		if hasAmPm {
			return "hh"
		}
		return "HH"
	case "H":
		if hasAmPm {
			return "h"
		}
		return "H"
	case "SS":
		return "ss"
	case "S":
		return "s"
	case "AM/PM", "A/P":
		return "a"
	}
	logf("unsupported spreadsheet date token %q", upper)
	return ""
}
