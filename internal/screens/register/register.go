package register

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/forms"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/navigation"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, in api.RegistrationInput) api.Outcome
}

type resultMsg struct {
	view    screen.ViewID
	req     uint64
	email   string
	outcome api.Outcome
}

func (m resultMsg) Target() screen.ViewID { return m.view }

// RegisterScreen is the sign-up form.
type RegisterScreen struct {
	id  screen.ViewID
	reg Registrar
	tr  *i18n.Translator

	form    forms.RegisterForm
	fields  components.Fields
	tracker navigation.Tracker
	errMsg  string
}

var _ screen.Screen = (*RegisterScreen)(nil)
var _ screen.Identified = (*RegisterScreen)(nil)
var _ screen.KeyHintProvider = (*RegisterScreen)(nil)

// New creates the registration page.
func New(reg Registrar, tr *i18n.Translator) *RegisterScreen {
	s := &RegisterScreen{
		id:  screen.NewViewID(),
		reg: reg,
		tr:  tr,
	}

	var inputs []components.TextInput
	for _, f := range s.form.Fields() {
		inputs = append(inputs, components.NewTextInput(f.Label, "", f.Secret))
	}
	s.fields = components.NewFields(inputs...)
	return s
}

func (s *RegisterScreen) ViewID() screen.ViewID {
	return s.id
}

func (s *RegisterScreen) Init() tea.Cmd {
	return s.fields.Init()
}

func (s *RegisterScreen) Title() string {
	return s.tr.T("Register")
}

func (s *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: s.tr.T("Next field")},
		{Key: "Enter", Description: s.tr.T("Submit")},
		{Key: "Esc", Description: s.tr.T("Back")},
	}
}

func (s *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		return s, s.settle(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	var changed bool
	s.fields, cmd, changed = s.fields.Update(msg)
	if changed {
		i := s.fields.Focus
		_ = s.form.OnChange(s.form.Fields()[i].Name, s.fields.Inputs[i].Value())
	}
	return s, cmd
}

func (s *RegisterScreen) submit() tea.Cmd {
	if s.tracker.Busy() {
		return nil
	}
	s.errMsg = ""
	id := s.tracker.Begin()
	in := s.form.Input()
	view, reg := s.id, s.reg
	return func() tea.Msg {
		return resultMsg{
			view:    view,
			req:     id,
			email:   in.Email,
			outcome: reg.Register(context.Background(), in),
		}
	}
}

func (s *RegisterScreen) settle(msg resultMsg) tea.Cmd {
	if msg.view != s.id || !s.tracker.Settle(msg.req, msg.outcome.OK()) {
		return nil
	}

	d := navigation.OnAuthResult(navigation.ActionRegister, msg.outcome, msg.email)
	if !d.Navigate {
		s.errMsg = d.Message
		return nil
	}
	return router.ResetTo(d.Target)
}

func (s *RegisterScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(s.tr.T("Create account")))
	b.WriteString("\n\n")

	for i, in := range s.fields.Inputs {
		in.Label = s.tr.T(s.form.Fields()[i].Label)
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.tracker.Busy() {
		b.WriteString(theme.Hint.Render(s.tr.T("Submitting…")))
	} else {
		b.WriteString(components.Button{Label: s.tr.T("Register"), Active: true}.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorBanner.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// ErrorMessage returns the message shown after a failed attempt.
func (s *RegisterScreen) ErrorMessage() string {
	return s.errMsg
}
