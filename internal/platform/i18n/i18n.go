// Package i18n owns the set of locales the site is translated into and the
// matching rules used to pick one for a request.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	englishUS = language.AmericanEnglish
	spanishUS = language.MustParse("es-US")

	supportedTags = []language.Tag{englishUS, spanishUS}
	matcher       = language.NewMatcher(supportedTags)
)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language tag.
func DefaultTag() language.Tag {
	return englishUS
}

// ParseTag parses value and maps it to a supported tag. It reports false when
// the value is malformed or matches no supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[idx], true
}

// MatchTags returns the best supported tag for a preference list such as a
// parsed Accept-Language header.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[idx]
}

// LabelKey returns the message key naming tag in a language picker.
func LabelKey(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "es":
		return "nav.lang_es"
	default:
		return "nav.lang_en"
	}
}
