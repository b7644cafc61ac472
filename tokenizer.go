package datefmt

import (
	"strings"
	"unicode/utf8"
)

// Kind is the family of a pattern segment.
type Kind uint8

const (
	KindLiteral   Kind = iota
	KindYear           // y
	KindMonth          // M
	KindDay            // d
	KindWeekday        // E
	KindHour24         // H
	KindHour12         // h
	KindHourK          // k
	KindMinute         // m
	KindSecond         // s
	KindFraction       // S
	KindDayPeriod      // a
	KindOffset         // Z
	KindWeek           // w
	KindQuarter        // Q
)

var kindLetters = [...]rune{
	KindYear:      'y',
	KindMonth:     'M',
	KindDay:       'd',
	KindWeekday:   'E',
	KindHour24:    'H',
	KindHour12:    'h',
	KindHourK:     'k',
	KindMinute:    'm',
	KindSecond:    's',
	KindFraction:  'S',
	KindDayPeriod: 'a',
	KindOffset:    'Z',
	KindWeek:      'w',
	KindQuarter:   'Q',
}

func kindOf(r rune) Kind {
	switch r {
	case 'y':
		return KindYear
	case 'M':
		return KindMonth
	case 'd':
		return KindDay
	case 'E':
		return KindWeekday
	case 'H':
		return KindHour24
	case 'h':
		return KindHour12
	case 'k':
		return KindHourK
	case 'm':
		return KindMinute
	case 's':
		return KindSecond
	case 'S':
		return KindFraction
	case 'a':
		return KindDayPeriod
	case 'Z':
		return KindOffset
	case 'w':
		return KindWeek
	case 'Q':
		return KindQuarter
	}
	return KindLiteral
}

// Letter returns the pattern letter of the kind, or zero for literals.
func (k Kind) Letter() rune {
	if int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return 0
}

// Segment is either a literal run of text or a token with its width, the number of repeated letters.
type Segment struct {
	Kind  Kind
	Width int
	Text  string // literal text, empty for tokens
}

func (s Segment) String() string {
	if s.Kind == KindLiteral {
		return s.Text
	}
	return strings.Repeat(string(s.Kind.Letter()), s.Width)
}

// Tokenize splits an expanded pattern into literal runs and token runs. Letters outside the token set are literal text, and adjacent literal characters are merged.
func Tokenize(pattern string) []Segment {
	segments := []Segment{}
	lit := 0 // start of the pending literal run
	for i := 0; i < len(pattern); {
		r, n := utf8.DecodeRuneInString(pattern[i:])
		kind := kindOf(r)
		if kind == KindLiteral {
			i += n
			continue
		}
		if lit < i {
			segments = append(segments, Segment{Kind: KindLiteral, Text: pattern[lit:i]})
		}

		// token letters are ASCII
		width := 1
		for i+width < len(pattern) && rune(pattern[i+width]) == r {
			width++
		}
		segments = append(segments, Segment{Kind: kind, Width: width})
		i += width
		lit = i
	}
	if lit < len(pattern) {
		segments = append(segments, Segment{Kind: KindLiteral, Text: pattern[lit:]})
	}
	return segments
}
