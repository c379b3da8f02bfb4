package notfound

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// NotFoundScreen is shown for any path without a route.
type NotFoundScreen struct {
	tr   *i18n.Translator
	path string
}

var _ screen.Screen = (*NotFoundScreen)(nil)
var _ screen.KeyHintProvider = (*NotFoundScreen)(nil)

// New creates the 404 page for loc.
func New(tr *i18n.Translator, loc router.Location) *NotFoundScreen {
	return &NotFoundScreen{tr: tr, path: loc.Path}
}

func (p *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (p *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return p, router.ResetTo(router.At("/"))
	}
	return p, nil
}

func (p *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: p.tr.T("Home")},
		{Key: "Esc", Description: p.tr.T("Back")},
	}
}

func (p *NotFoundScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ 404 ╌╌\n\n" + p.tr.T("The page %s does not exist.", p.path))

	return content
}

func (p *NotFoundScreen) Title() string {
	return p.tr.T("Page not found")
}
