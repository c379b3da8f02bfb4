package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	tr      *i18n.Translator

	address     components.TextInput
	addressOpen bool

	width  int
	height int
}

// New builds the root model from opts.
func New(opts Options) AppModel {
	opts = opts.withDefaults()

	address := components.NewTextInput("URL", "/path?query", false)
	return AppModel{
		router: router.NewAt(routes(opts), opts.Start,
			router.WithAuth(opts.Session.Active),
			router.WithOrigin(opts.Origin),
		),
		session: opts.Session,
		tr:      opts.Translator,
		address: address,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.OpenAddressBarMsg:
		return m, m.openAddressBar(msg.Prefill)

	case tea.KeyMsg:
		if m.addressOpen {
			return m.updateAddressBar(msg)
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "ctrl+g":
			return m, m.openAddressBar(m.router.Location().String())
		case "ctrl+l":
			m.tr.Cycle()
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) openAddressBar(prefill string) tea.Cmd {
	m.addressOpen = true
	m.address.SetValue(prefill)
	m.address.Model.CursorEnd()
	return m.address.Focus()
}

func (m AppModel) updateAddressBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.addressOpen = false
		m.address.Blur()
		return m, nil
	case "enter":
		m.addressOpen = false
		m.address.Blur()
		loc := router.ParseLocation(m.address.Value())
		return m, router.NavigateTo(loc)
	}

	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	return m, cmd
}

// URL returns the address of the page being shown.
func (m AppModel) URL() string {
	return m.router.URL()
}

// Active returns the page being shown.
func (m AppModel) Active() screen.Screen {
	return m.router.Active()
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(layout.HeaderInfo{
		Title:    title,
		Language: m.tr.Code(),
		User:     m.session.Email(),
	}, m.width)

	var bar string
	if m.addressOpen {
		bar = theme.AddressBar.Width(m.width).Render(m.address.View())
	} else {
		bar = theme.AddressBar.Width(m.width).Foreground(theme.TextDim).Render(m.router.URL())
	}

	footer := layout.RenderFooter(m.keyHints(active), m.width)

	headerHeight := lipgloss.Height(header) + lipgloss.Height(bar)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header+"\n"+bar, content, footer, m.width, m.height)
}

func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	if m.addressOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: m.tr.T("Go to")},
			{Key: "Esc", Description: m.tr.T("Back")},
		}
	}

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: m.tr.T("Back")}}
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+L", Description: m.tr.T("Language")},
		layout.KeyHint{Key: "Ctrl+C", Description: m.tr.T("Quit")},
	)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
