package app

import (
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/fakeapi"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/session"
)

func newTestApp(t *testing.T, start string) (AppModel, *fakeapi.Server) {
	t.Helper()

	cfg := fakeapi.DefaultConfig()
	cfg.BcryptCost = bcrypt.MinCost
	endpoints := api.DefaultConfig().Endpoints
	srv, err := fakeapi.NewServer(cfg, endpoints)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	sess := session.New()
	clientCfg := api.DefaultConfig()
	clientCfg.BaseURL = ts.URL
	client, err := api.NewHTTPClient(clientCfg, api.WithTokenSource(sess))
	require.NoError(t, err)

	m := New(Options{
		Service:    api.NewService(client, endpoints),
		Session:    sess,
		Translator: i18n.New(language.English),
		Start:      router.ParseLocation(start),
	})
	return m, srv
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func key(m AppModel, code rune) (AppModel, tea.Cmd) {
	return update(m, tea.KeyPressMsg{Code: code})
}

func typeText(m AppModel, s string) AppModel {
	for _, r := range s {
		m, _ = update(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

// fillForm types values into consecutive inputs, tabbing between them.
func fillForm(m AppModel, values ...string) AppModel {
	for i, v := range values {
		m = typeText(m, v)
		if i < len(values)-1 {
			m, _ = key(m, tea.KeyTab)
		}
	}
	return m
}

// submitAndFollow presses Enter, runs the request and then applies the
// navigation it produces. Screen Init commands are not run.
func submitAndFollow(t *testing.T, m AppModel) AppModel {
	t.Helper()
	m, cmd := key(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	m, cmd = update(m, cmd())
	if cmd != nil {
		m, _ = update(m, cmd())
	}
	return m
}

func goTo(m AppModel, raw string) AppModel {
	m, _ = update(m, router.NavigateMsg{To: router.ParseLocation(raw)})
	return m
}

func TestRegistrationLandsOnLogin(t *testing.T) {
	m, _ := newTestApp(t, "/register")
	require.Equal(t, "Register", m.Active().Title())

	m = fillForm(m, "Ada", "Lovelace", "ada", "ada@example.com", "analytical")
	m = submitAndFollow(t, m)

	assert.Equal(t, "http://localhost:9091/login", m.URL())
	assert.Equal(t, "Login", m.Active().Title())
}

func TestInvalidLoginStaysOnLogin(t *testing.T) {
	m, _ := newTestApp(t, "/login")

	m = fillForm(m, "cypresstest@gmail.com", "wrong-password")
	m = submitAndFollow(t, m)

	assert.Equal(t, "/login", m.router.Location().Path)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.render(), "incorrect Username or Password")
}

func TestLoginThenLogout(t *testing.T) {
	m, srv := newTestApp(t, "/login")

	m = fillForm(m, fakeapi.SeedEmail, fakeapi.SeedPassword)
	m = submitAndFollow(t, m)
	assert.Contains(t, m.URL(), "/welcome")
	assert.True(t, m.session.Active())

	m = goTo(m, "/lab?node_id=n1")
	require.Equal(t, "Node", m.Active().Title())
	m = submitAndFollow(t, m)
	assert.Equal(t, []string{"n1"}, srv.KnownNodes(fakeapi.SeedEmail))

	m, _ = key(m, tea.KeyEscape)
	m, _ = update(m, router.PopScreenMsg{})
	require.Equal(t, "Welcome", m.Active().Title())

	m, _ = key(m, tea.KeyDown)
	m = submitAndFollow(t, m)
	assert.Equal(t, "/login", m.router.Location().Path)
	assert.False(t, m.session.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestProtectedPagesRedirectWithoutSession(t *testing.T) {
	m, _ := newTestApp(t, "/welcome")
	assert.Equal(t, "/login", m.router.Location().Path)

	m = goTo(m, "/lab?node_id=1")
	assert.Equal(t, "Login", m.Active().Title())
}

func TestUnknownPathsRenderNotFound(t *testing.T) {
	for _, raw := range []string{"/nope", "/a/b", "/lab", "%zz", "/welcome/extra"} {
		t.Run(raw, func(t *testing.T) {
			m, _ := newTestApp(t, "/")
			m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

			assert.NotPanics(t, func() {
				m = goTo(m, raw)
				_ = m.render()
			})
			assert.Equal(t, "Page not found", m.Active().Title())
		})
	}
}

func TestAddressBar(t *testing.T) {
	m, _ := newTestApp(t, "/")

	m, _ = update(m, tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	require.True(t, m.addressOpen)
	assert.Equal(t, "/", m.address.Value())

	m = typeText(m, "verify?email=a%40b.c")
	m, cmd := key(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.False(t, m.addressOpen)

	m, _ = update(m, cmd())
	assert.Equal(t, "Verify your email", m.Active().Title())
	assert.Equal(t, "http://localhost:9091/verify?email=a%40b.c", m.URL())

	m, _ = update(m, tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	m, _ = key(m, tea.KeyEscape)
	assert.False(t, m.addressOpen)
	assert.Equal(t, "Verify your email", m.Active().Title())
}

func TestLanguageCycle(t *testing.T) {
	m, _ := newTestApp(t, "/login")
	m, _ = update(m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	assert.Equal(t, "Anmelden", m.Active().Title())
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.render(), "DE")
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestApp(t, "/")
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTooSmall(t *testing.T) {
	m, _ := newTestApp(t, "/")
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}
