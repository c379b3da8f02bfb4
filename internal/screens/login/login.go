package login

import (
	"context"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/forms"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/navigation"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// Authenticator submits credentials.
type Authenticator interface {
	Login(ctx context.Context, creds api.Credentials) api.Outcome
}

type resultMsg struct {
	view    screen.ViewID
	req     uint64
	email   string
	outcome api.Outcome
}

func (m resultMsg) Target() screen.ViewID { return m.view }

// LoginScreen is the sign-in form.
type LoginScreen struct {
	id      screen.ViewID
	auth    Authenticator
	session *session.Session
	tr      *i18n.Translator

	form    forms.LoginForm
	fields  components.Fields
	tracker navigation.Tracker

	errMsg string
	notice string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.Identified = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login page. state may carry a RegisteredState from a
// completed registration.
func New(auth Authenticator, sess *session.Session, tr *i18n.Translator, state any) *LoginScreen {
	s := &LoginScreen{
		id:      screen.NewViewID(),
		auth:    auth,
		session: sess,
		tr:      tr,
	}

	inputs := make([]components.TextInput, 0, 2)
	for _, f := range s.form.Fields() {
		inputs = append(inputs, components.NewTextInput(f.Label, "", f.Secret))
	}
	s.fields = components.NewFields(inputs...)

	if reg, ok := state.(navigation.RegisteredState); ok && reg.Email != "" {
		s.notice = tr.T("We sent a verification link to %s.", reg.Email)
		s.setField(0, reg.Email)
		s.fields.Move(1)
	}
	return s
}

func (s *LoginScreen) ViewID() screen.ViewID {
	return s.id
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.fields.Init()
}

func (s *LoginScreen) Title() string {
	return s.tr.T("Login")
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: s.tr.T("Next field")},
		{Key: "Enter", Description: s.tr.T("Submit")},
		{Key: "Esc", Description: s.tr.T("Back")},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		s.syncFocused()
	}
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	if s.tracker.Busy() {
		return nil
	}
	s.errMsg = ""
	id := s.tracker.Begin()
	creds := s.form.Credentials()
	view, auth := s.id, s.auth
	return func() tea.Msg {
		return resultMsg{
			view:    view,
			req:     id,
			email:   creds.Email,
			outcome: auth.Login(context.Background(), creds),
		}
	}
}

func (s *LoginScreen) settle(msg resultMsg) tea.Cmd {
	if msg.view != s.id || !s.tracker.Settle(msg.req, msg.outcome.OK()) {
		return nil
	}

	d := navigation.OnAuthResult(navigation.ActionLogin, msg.outcome, msg.email)
	if !d.Navigate {
		s.errMsg = d.Message
		return nil
	}

	var resp api.LoginResponse
	if err := msg.outcome.Decode(&resp); err != nil {
		log.Printf("warning: decode login response: %v", err)
	}
	if resp.Token == "" {
		log.Printf("warning: login response carried no token, relying on cookies")
	}
	email := resp.User.Email
	if email == "" {
		email = msg.email
	}
	s.session.Begin(email, resp.Token)
	return router.ResetTo(d.Target)
}

func (s *LoginScreen) setField(i int, v string) {
	s.fields.Inputs[i].SetValue(v)
	_ = s.form.OnChange(s.form.Fields()[i].Name, v)
}

func (s *LoginScreen) syncFocused() {
	i := s.fields.Focus
	_ = s.form.OnChange(s.form.Fields()[i].Name, s.fields.Inputs[i].Value())
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(s.tr.T("Login")))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(theme.NoticeBanner.Render(s.notice))
		b.WriteString("\n\n")
	}

	for i, in := range s.fields.Inputs {
		in.Label = s.tr.T(s.form.Fields()[i].Label)
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.tracker.Busy() {
		b.WriteString(theme.Hint.Render(s.tr.T("Submitting…")))
	} else {
		b.WriteString(components.Button{Label: s.tr.T("Log in"), Active: true}.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorBanner.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// ErrorMessage returns the message shown after a failed attempt.
func (s *LoginScreen) ErrorMessage() string {
	return s.errMsg
}
