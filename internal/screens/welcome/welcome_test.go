package welcome

import (
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/session"
)

func newTestWelcome(outcomes ...api.Outcome) (*WelcomeScreen, *session.Session, *api.MockClient) {
	mock := api.NewMockClient(outcomes...)
	svc := api.NewService(mock, api.DefaultConfig().Endpoints)
	sess := session.New()
	sess.Begin("cypresstest@gmail.com", "tok")
	return New(svc, sess, i18n.New(language.English)), sess, mock
}

func logout(t *testing.T, w *WelcomeScreen) tea.Msg {
	t.Helper()
	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, next := w.Update(cmd())
	require.NotNil(t, next)
	return next()
}

func TestGreetsSessionEmail(t *testing.T) {
	w, _, _ := newTestWelcome()
	assert.Contains(t, w.View(100, 30), "Welcome, cypresstest@gmail.com")
}

func TestLogoutAlwaysLandsOnLogin(t *testing.T) {
	tests := []struct {
		name    string
		outcome []api.Outcome
	}{
		{"success", []api.Outcome{api.Success(http.StatusOK, nil)}},
		{"server error", []api.Outcome{api.Failure(http.StatusInternalServerError, "boom")}},
		{"transport error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, sess, mock := newTestWelcome(tt.outcome...)

			msg := logout(t, w)

			nav, ok := msg.(router.NavigateMsg)
			require.True(t, ok)
			assert.Equal(t, "/login", nav.To.Path)
			assert.True(t, nav.Reset)
			assert.False(t, sess.Active())
			assert.Equal(t, 1, mock.CallCount())
		})
	}
}

func TestLogoutDisabledWhileInFlight(t *testing.T) {
	w, _, mock := newTestWelcome(api.Success(http.StatusOK, nil))

	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, first := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, second := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NotNil(t, first)
	assert.Nil(t, second)
	assert.Contains(t, w.View(100, 30), "Logging out…")
	first()
	assert.Equal(t, 1, mock.CallCount())
}

func TestOpenNodeRequestsAddressBar(t *testing.T) {
	w, _, _ := newTestWelcome()
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.OpenAddressBarMsg{Prefill: "/"}, cmd())
}
