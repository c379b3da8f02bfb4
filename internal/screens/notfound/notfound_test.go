package notfound

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
)

func TestRendersPath(t *testing.T) {
	for _, raw := range []string{"/nope", "/a/b/c", "%zz", ""} {
		p := New(i18n.New(language.English), router.ParseLocation(raw))
		assert.NotPanics(t, func() { p.View(80, 20) })
		assert.Equal(t, "Page not found", p.Title())
	}

	p := New(i18n.New(language.English), router.ParseLocation("/nope"))
	assert.Contains(t, p.View(80, 20), "/nope")
}

func TestEnterGoesHome(t *testing.T) {
	p := New(i18n.New(language.English), router.At("/x"))
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{To: router.At("/"), Reset: true}, cmd())
}
