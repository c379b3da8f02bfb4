package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/navigation"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// LogoutService ends the backend session.
type LogoutService interface {
	Logout(ctx context.Context) api.Outcome
}

type logoutMsg struct {
	view    screen.ViewID
	outcome api.Outcome
}

func (m logoutMsg) Target() screen.ViewID { return m.view }

// WelcomeScreen greets a signed-in user.
type WelcomeScreen struct {
	id         screen.ViewID
	svc        LogoutService
	session    *session.Session
	tr         *i18n.Translator
	menu       components.Menu
	loggingOut bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.Identified = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome page.
func New(svc LogoutService, sess *session.Session, tr *i18n.Translator) *WelcomeScreen {
	w := &WelcomeScreen{
		id:      screen.NewViewID(),
		svc:     svc,
		session: sess,
		tr:      tr,
	}
	w.menu = components.NewMenu(w.items())
	return w
}

func (w *WelcomeScreen) items() []components.MenuItem {
	return []components.MenuItem{
		{Label: w.tr.T("Open a node"), Action: func() tea.Cmd {
			return func() tea.Msg { return router.OpenAddressBarMsg{Prefill: "/"} }
		}},
		{Label: w.tr.T("Log out"), Action: w.logout, Disabled: w.loggingOut, Hint: w.logoutHint()},
	}
}

func (w *WelcomeScreen) logoutHint() string {
	if w.loggingOut {
		return w.tr.T("Logging out…")
	}
	return ""
}

func (w *WelcomeScreen) ViewID() screen.ViewID {
	return w.id
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Title() string {
	return w.tr.T("Welcome")
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: w.tr.T("Navigate")},
		{Key: "Enter", Description: w.tr.T("Select")},
		{Key: "Ctrl+G", Description: w.tr.T("Go to")},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(logoutMsg); ok {
		if msg.view != w.id {
			return w, nil
		}
		// Leave even when the server call failed.
		w.session.Clear()
		d := navigation.OnAuthResult(navigation.ActionLogout, msg.outcome, "")
		return w, router.ResetTo(d.Target)
	}

	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) logout() tea.Cmd {
	if w.loggingOut {
		return nil
	}
	w.loggingOut = true
	w.menu.SetItems(w.items())

	view, svc := w.id, w.svc
	return func() tea.Msg {
		return logoutMsg{view: view, outcome: svc.Logout(context.Background())}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	w.menu.SetItems(w.items())

	greeting := w.tr.T("Welcome")
	if email := w.session.Email(); email != "" {
		greeting = w.tr.T("Welcome, %s", email)
	}

	content := strings.Join([]string{
		theme.Title.Render(greeting),
		"",
		w.menu.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
