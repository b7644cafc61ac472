package datefmt

import (
	"fmt"
	"strings"
)

// CompositeTokens are the tokens that expand into locale-defined patterns.
var CompositeTokens = []string{"L", "LL", "LLL", "LLLL", "l", "ll", "lll", "llll", "LT", "LTS"}

// Expand replaces every composite token in pattern by the pattern the provider defines for it. Runs of L or l longer than four are split into tokens of at most four letters, and LTS is matched before LT before L. Expansion is a single pass: a definition that contains a composite token again returns an error wrapping both ErrLocaleDataMissing and ErrCompositeCycle.
func Expand(pattern string, loc Locale, p Provider) (string, error) {
	if !strings.ContainsAny(pattern, "Ll") {
		return pattern, nil
	}

	sb := strings.Builder{}
	sb.Grow(len(pattern) * 2)
	for i := 0; i < len(pattern); {
		if c := pattern[i]; c != 'L' && c != 'l' {
			sb.WriteByte(c)
			i++
			continue
		}

		token := compositeAt(pattern[i:])
		sub, err := p.CompositePattern(loc, token)
		if err != nil {
			return "", err
		} else if strings.ContainsAny(sub, "Ll") {
			return "", fmt.Errorf("%w: %w: %s for %s expands to %q", ErrLocaleDataMissing, ErrCompositeCycle, token, loc, sub)
		}
		sb.WriteString(sub)
		i += len(token)
	}
	return sb.String(), nil
}

// compositeAt returns the composite token at the start of s, which must begin with L or l.
func compositeAt(s string) string {
	if strings.HasPrefix(s, "LTS") {
		return "LTS"
	} else if strings.HasPrefix(s, "LT") {
		return "LT"
	}
	n := 1
	for n < len(s) && n < 4 && s[n] == s[0] {
		n++
	}
	return s[:n]
}
