package gallery

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

var locales = []string{"en", "pt-BR"}

// Translator resolves message ids for the languages a client accepts
type Translator struct {
	bundle   *i18n.Bundle
	fallback *i18n.Localizer
}

type localizerKey struct{}

// NewTranslator loads the embedded locale files
func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, locale := range locales {
		data, err := localesFS.ReadFile("locales/" + locale + ".json")
		if err != nil {
			return nil, fmt.Errorf("while reading locale %s: %w", locale, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, locale+".json"); err != nil {
			return nil, fmt.Errorf("while parsing locale %s: %w", locale, err)
		}
	}
	return &Translator{
		bundle:   bundle,
		fallback: i18n.NewLocalizer(bundle, language.English.String()),
	}, nil
}

// ForRequest picks a localizer from the Accept-Language header
func (t *Translator) ForRequest(r *http.Request) *i18n.Localizer {
	return i18n.NewLocalizer(t.bundle, r.Header.Get("Accept-Language"), language.English.String())
}

// Middleware stores the request localizer in the request context
func (t *Translator) Middleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), localizerKey{}, t.ForRequest(r))
		handler.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Localizer returns the localizer of ctx, or the English one
func (t *Translator) Localizer(ctx context.Context) *i18n.Localizer {
	if localizer, ok := ctx.Value(localizerKey{}).(*i18n.Localizer); ok {
		return localizer
	}
	return t.fallback
}

// Translate resolves messageID, returning the id itself when unknown
func (t *Translator) Translate(ctx context.Context, messageID string) string {
	msg, err := t.Localizer(ctx).Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Func returns a translation function bound to ctx, for templates
func (t *Translator) Func(ctx context.Context) func(string) string {
	return func(messageID string) string {
		return t.Translate(ctx, messageID)
	}
}
