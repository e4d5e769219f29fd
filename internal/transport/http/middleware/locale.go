package middleware

import (
	"context"
	"net/http"

	"github.com/event-showcase-api/internal/pkg/i18n"
	"golang.org/x/text/language"
)

// LangCookie remembers the visitor's language choice.
const LangCookie = "lang"

const localeKey contextKey = "locale"

// Locale resolves the response language from ?lang=, the lang cookie, then
// Accept-Language, and stores it in the request context.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := resolveLocale(r)
		w.Header().Set("Content-Language", tag.String())
		ctx := context.WithValue(r.Context(), localeKey, tag)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveLocale(r *http.Request) language.Tag {
	if tag, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		return tag
	}
	if c, err := r.Cookie(LangCookie); err == nil {
		if tag, ok := i18n.Parse(c.Value); ok {
			return tag
		}
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		return i18n.Match(al)
	}
	return i18n.Default()
}

// LocaleFromContext returns the language chosen by Locale, or the default.
func LocaleFromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeKey).(language.Tag); ok {
		return tag
	}
	return i18n.Default()
}
