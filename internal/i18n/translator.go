// Package i18n resolves user-facing message keys into the caller's language.
package i18n

import (
	"fmt"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pl"
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

const (
	QueryParam = "lang"
	CookieName = "i18next"

	localsKey = "translator"
)

// Bundle holds one translator per supported language. English is the fallback.
type Bundle struct {
	uni      *ut.UniversalTranslator
	fallback ut.Translator
	matcher  language.Matcher
	tags     []string
}

func NewBundle() (*Bundle, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, pl.New())

	tags := []string{"en", "pl"}
	for _, lang := range tags {
		trans, found := uni.GetTranslator(lang)
		if !found {
			return nil, fmt.Errorf("translator %q not registered", lang)
		}
		for key, text := range catalogs[lang] {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("add %s/%s: %w", lang, key, err)
			}
		}
	}

	fallback, _ := uni.GetTranslator("en")

	return &Bundle{
		uni:      uni,
		fallback: fallback,
		matcher:  language.NewMatcher([]language.Tag{language.English, language.Polish}),
		tags:     tags,
	}, nil
}

// Translator picks the translator for an explicit language, an Accept-Language
// header value and a cookie value, in that order. Blank inputs are skipped.
func (b *Bundle) Translator(query, acceptLanguage, cookie string) ut.Translator {
	if trans, ok := b.uni.GetTranslator(query); ok && query != "" {
		return trans
	}

	if acceptLanguage != "" {
		if parsed, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(parsed) > 0 {
			_, idx, conf := b.matcher.Match(parsed...)
			if conf != language.No {
				trans, _ := b.uni.GetTranslator(b.tags[idx])
				return trans
			}
		}
	}

	if trans, ok := b.uni.GetTranslator(cookie); ok && cookie != "" {
		return trans
	}

	return b.fallback
}

// Translate renders key with trans, falling back to English and then to the
// key itself.
func (b *Bundle) Translate(trans ut.Translator, key string) string {
	if trans != nil {
		if text, err := trans.T(key); err == nil {
			return text
		}
	}
	if text, err := b.fallback.T(key); err == nil {
		return text
	}
	return key
}

// Middleware stores the request's translator in fiber locals.
func (b *Bundle) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localsKey, b.Translator(c.Query(QueryParam), c.Get(fiber.HeaderAcceptLanguage), c.Cookies(CookieName)))
		return c.Next()
	}
}

// T translates key for the current request.
func (b *Bundle) T(c *fiber.Ctx, key string) string {
	trans, _ := c.Locals(localsKey).(ut.Translator)
	return b.Translate(trans, key)
}
