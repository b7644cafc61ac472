package datefmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies the language and region that names and composite patterns are taken from. It is immutable and may be shared between goroutines.
type Locale struct {
	id  string
	tag language.Tag
}

// NewLocale parses a language-region identifier such as "en-US". Underscores are accepted as separators.
func NewLocale(id string) (Locale, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(id), "_", "-")
	if norm == "" {
		return Locale{}, fmt.Errorf("%w: empty identifier", ErrInvalidLocale)
	}
	tag, err := language.Parse(norm)
	if err != nil {
		return Locale{}, fmt.Errorf("%w %q: %v", ErrInvalidLocale, id, err)
	}
	return Locale{
		id:  tag.String(),
		tag: tag,
	}, nil
}

// MustLocale is like NewLocale but panics on an invalid identifier.
func MustLocale(id string) Locale {
	loc, err := NewLocale(id)
	if err != nil {
		panic(err)
	}
	return loc
}

// ID returns the canonical identifier, e.g. "en-US".
func (l Locale) ID() string {
	return l.id
}

func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) String() string {
	if l.id == "" {
		return "und"
	}
	return l.id
}

// Candidates returns the identifier followed by its parents, most specific first, e.g. "en-GB", "en-001", "en". The root locale is not included, and the base language is only added when it is explicit, so "und-US" never falls back to a guessed "en".
func (l Locale) Candidates() []string {
	if l.id == "" {
		return nil
	}
	candidates := []string{l.id}
	for tag := l.tag.Parent(); !tag.IsRoot(); tag = tag.Parent() {
		if !containsString(candidates, tag.String()) {
			candidates = append(candidates, tag.String())
		}
	}
	if base, conf := l.tag.Base(); conf == language.Exact && !containsString(candidates, base.String()) {
		candidates = append(candidates, base.String())
	}
	return candidates
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// LocaleFromTag returns the locale for a language tag.
func LocaleFromTag(tag language.Tag) Locale {
	return Locale{
		id:  tag.String(),
		tag: tag,
	}
}
