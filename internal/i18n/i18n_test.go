package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"de_DE.UTF-8", language.German},
		{"es-MX", language.Spanish},
		{"es_ES@euro", language.Spanish},
		{"en_US.UTF-8", language.English},
		{"fr_FR.UTF-8", language.English},
		{"C", language.English},
		{"", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.locale))
		})
	}
}

func TestTranslate(t *testing.T) {
	tr := New(language.German)
	assert.Equal(t, "Anmelden", tr.T("Log in"))
	assert.Equal(t, "Willkommen, ada@example.com", tr.T("Welcome, %s", "ada@example.com"))

	tr.SetLanguage(language.English)
	assert.Equal(t, "Log in", tr.T("Log in"))
	assert.Equal(t, "Welcome, ada@example.com", tr.T("Welcome, %s", "ada@example.com"))
}

func TestMissingKeyReturnsKey(t *testing.T) {
	tr := New(language.Spanish)
	assert.Equal(t, "No such label", tr.T("No such label"))
}

func TestCycle(t *testing.T) {
	tr := New(language.English)
	assert.Equal(t, "en", tr.Code())

	assert.Equal(t, language.German, tr.Cycle())
	assert.Equal(t, "de", tr.Code())
	assert.Equal(t, language.Spanish, tr.Cycle())
	assert.Equal(t, language.English, tr.Cycle())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "es_AR.UTF-8")
	assert.Equal(t, language.Spanish, FromEnv().Language())
}

func TestEveryLanguageCoversSameKeys(t *testing.T) {
	de := translations[language.German]
	es := translations[language.Spanish]
	for k := range de {
		_, ok := es[k]
		assert.True(t, ok, "spanish missing %q", k)
	}
	assert.Len(t, es, len(de))
}
