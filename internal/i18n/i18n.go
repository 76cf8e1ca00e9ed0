// Package i18n localizes titles and UI labels. English is the source
// language; other locales are embedded TOML message files.
package i18n

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

var messageFiles = []string{
	"locales/active.en.toml",
	"locales/active.ko.toml",
}

// Supported lists the locales with a message file.
var Supported = []string{"en", "ko"}

// Localizer resolves messages for one locale, falling back to English.
type Localizer struct {
	tag language.Tag
	loc *goi18n.Localizer
}

// New builds a Localizer for locale, e.g. "en" or "ko-KR". Locales without
// translations fall back to English.
func New(locale string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFiles, path); err != nil {
			return nil, fmt.Errorf("failed to load locale file %s: %w", path, err)
		}
	}

	return &Localizer{tag: tag, loc: goi18n.NewLocalizer(bundle, tag.String())}, nil
}

// English returns the fallback Localizer. The embedded files are known to
// parse, so it cannot fail.
func English() *Localizer {
	l, err := New("en")
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the requested language.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Localize renders msg with optional template data. The message's Other
// text is used when no translation exists.
func (l *Localizer) Localize(msg *goi18n.Message, data map[string]any) string {
	if l == nil {
		return msg.Other
	}
	out, _ := l.loc.Localize(&goi18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
	if out == "" {
		return msg.Other
	}
	return out
}

// T is shorthand for a message without template data.
func (l *Localizer) T(id, other string) string {
	return l.Localize(&goi18n.Message{ID: id, Other: other}, nil)
}
