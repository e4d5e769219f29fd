// Package i18n holds the static French/English label catalog. French is the
// site's primary language; English is the only alternative.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.French,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

func init() {
	for key, labels := range catalog {
		_ = message.SetString(language.French, key, labels[0])
		_ = message.SetString(language.English, key, labels[1])
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.French
}

// Parse returns the supported tag for value ("fr", "en-GB", ...), if any.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		if sb, _ := supported.Base(); sb == base {
			return supported, true
		}
	}
	return language.Und, false
}

// Match picks the best supported tag for an Accept-Language header value.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// T returns the label for key in the given language.
func T(tag language.Tag, key string) string {
	return message.NewPrinter(tag).Sprintf(key)
}
