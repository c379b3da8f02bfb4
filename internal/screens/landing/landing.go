package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// LandingScreen is the public home page.
type LandingScreen struct {
	tr   *i18n.Translator
	menu components.Menu
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing page.
func New(tr *i18n.Translator) *LandingScreen {
	l := &LandingScreen{tr: tr}
	l.menu = components.NewMenu(l.items())
	return l
}

// items are rebuilt on every render so labels follow the language.
func (l *LandingScreen) items() []components.MenuItem {
	return []components.MenuItem{
		{Label: l.tr.T("Log in"), Action: func() tea.Cmd {
			return router.NavigateTo(router.At("/login"))
		}},
		{Label: l.tr.T("Create account"), Action: func() tea.Cmd {
			return router.NavigateTo(router.At("/register"))
		}},
		{Label: l.tr.T("Language"), Hint: strings.ToUpper(l.tr.Code()), Action: func() tea.Cmd {
			l.tr.Cycle()
			return nil
		}},
		{Label: l.tr.T("Quit"), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Title() string {
	return l.tr.T("Home")
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: l.tr.T("Navigate")},
		{Key: "Enter", Description: l.tr.T("Select")},
		{Key: "Ctrl+G", Description: l.tr.T("Go to")},
		{Key: "Ctrl+C", Description: l.tr.T("Quit")},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	l.menu.SetItems(l.items())

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(l.tr.T("Learn at your own pace."))

	content := strings.Join([]string{
		RenderBanner(width),
		"",
		tagline,
		"",
		l.menu.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
