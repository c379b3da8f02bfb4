package verify

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/navigation"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// VerifyScreen tells the user to confirm their email address.
type VerifyScreen struct {
	tr    *i18n.Translator
	email string
}

var _ screen.Screen = (*VerifyScreen)(nil)
var _ screen.KeyHintProvider = (*VerifyScreen)(nil)

// New creates the verification page. The email comes from navigation
// state, or from an email query parameter when the page is opened by
// address.
func New(tr *i18n.Translator, loc router.Location) *VerifyScreen {
	email := loc.Param("email")
	switch st := loc.State.(type) {
	case navigation.RegisteredState:
		email = st.Email
	case string:
		email = st
	}
	return &VerifyScreen{tr: tr, email: email}
}

func (v *VerifyScreen) Init() tea.Cmd {
	return nil
}

func (v *VerifyScreen) Title() string {
	return v.tr.T("Verify your email")
}

func (v *VerifyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: v.tr.T("Log in")},
		{Key: "Esc", Description: v.tr.T("Back")},
	}
}

func (v *VerifyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return v, router.NavigateTo(router.At("/login"))
	}
	return v, nil
}

func (v *VerifyScreen) View(width, height int) string {
	body := v.tr.T("Check your inbox.")
	if v.email != "" {
		body = v.tr.T("We sent a verification link to %s.", v.email)
	}

	content := strings.Join([]string{
		theme.Title.Render(v.tr.T("Verify your email")),
		"",
		theme.Body.Render(body),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
