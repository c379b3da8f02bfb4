package register

import (
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/navigation"
	"github.com/abhisek/learnpath/internal/router"
)

func newScreen(outcomes ...api.Outcome) (*RegisterScreen, *api.MockClient) {
	mock := api.NewMockClient(outcomes...)
	svc := api.NewService(mock, api.DefaultConfig().Endpoints)
	return New(svc, i18n.New(language.English)), mock
}

func fillAll(s *RegisterScreen, values ...string) {
	for i, v := range values {
		for _, r := range v {
			s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		}
		if i < len(values)-1 {
			s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		}
	}
}

func submit(t *testing.T, s *RegisterScreen) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, next := s.Update(cmd())
	return next
}

func TestCreatedNavigatesToLogin(t *testing.T) {
	s, mock := newScreen(api.Success(http.StatusCreated, nil))

	fillAll(s, "Ada", "Lovelace", "ada", "ada@example.com", "pw")
	next := submit(t, s)

	require.NotNil(t, next)
	msg := next().(router.NavigateMsg)
	assert.Equal(t, "/login", msg.To.String())
	assert.Equal(t, navigation.RegisteredState{Email: "ada@example.com"}, msg.To.State)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, api.RegistrationInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "pw",
	}, mock.Calls[0].Body)
}

func TestFailureStaysWithMessage(t *testing.T) {
	s, _ := newScreen(api.Failure(http.StatusConflict, "username already taken"))

	next := submit(t, s)

	assert.Nil(t, next)
	assert.Equal(t, "username already taken", s.ErrorMessage())
	assert.Contains(t, s.View(100, 30), "username already taken")
}

func TestTransportFailureShowsGenericMessage(t *testing.T) {
	s, _ := newScreen()

	submit(t, s)

	assert.Equal(t, api.GenericErrorMessage, s.ErrorMessage())
}

func TestResubmitAfterFailure(t *testing.T) {
	s, mock := newScreen(
		api.Failure(http.StatusBadRequest, "email is required"),
		api.Success(http.StatusCreated, nil),
	)

	submit(t, s)
	assert.Equal(t, "email is required", s.ErrorMessage())

	next := submit(t, s)
	assert.NotNil(t, next)
	assert.Empty(t, s.ErrorMessage())
	assert.Equal(t, 2, mock.CallCount())
}
