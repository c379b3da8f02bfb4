// Package i18n picks the UI language and translates labels.
//
// Keys are the English strings themselves, so English needs no catalog
// entries and a missing translation falls back to the key.
package i18n

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the UI languages in picker order. The first is the
// fallback.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(Supported)

// Translator renders UI strings in the selected language. It is shared by
// every screen, so switching language takes effect on the next render.
type Translator struct {
	mu      sync.RWMutex
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the supported language closest to tag.
func New(tag language.Tag) *Translator {
	t := &Translator{}
	t.set(Match(tag.String()))
	return t
}

// FromEnv picks the language from LC_ALL, LC_MESSAGES or LANG.
func FromEnv() *Translator {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return New(Match(v))
		}
	}
	return New(language.English)
}

// Match maps a locale string such as "de_DE.UTF-8" or "es-MX" to a
// supported language. Unknown input yields English.
func Match(locale string) language.Tag {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// T translates key, formatting args into it when given.
func (t *Translator) T(key string, args ...any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.printer.Sprintf(key, args...)
}

// Language returns the active language.
func (t *Translator) Language() language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tag
}

// Code returns the active language as a short code, e.g. "de".
func (t *Translator) Code() string {
	base, _ := t.Language().Base()
	return base.String()
}

// SetLanguage switches to the supported language closest to tag.
func (t *Translator) SetLanguage(tag language.Tag) {
	t.set(Match(tag.String()))
}

// Cycle advances to the next supported language and returns it.
func (t *Translator) Cycle() language.Tag {
	cur := t.Language()
	next := Supported[0]
	for i, tag := range Supported {
		if tag == cur {
			next = Supported[(i+1)%len(Supported)]
			break
		}
	}
	t.set(next)
	return next
}

func (t *Translator) set(tag language.Tag) {
	p := message.NewPrinter(tag, message.Catalog(uiCatalog))
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tag = tag
	t.printer = p
}

var uiCatalog = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("i18n: " + key + ": " + err.Error())
			}
		}
	}
	return b
}
