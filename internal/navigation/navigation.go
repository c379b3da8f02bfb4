// Package navigation decides where the user goes after an authentication
// call settles and guards against responses that arrive out of order.
package navigation

import (
	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/router"
)

// Action names the authentication call that produced an outcome.
type Action int

const (
	ActionLogin Action = iota
	ActionRegister
	ActionLogout
)

func (a Action) String() string {
	switch a {
	case ActionLogin:
		return "login"
	case ActionRegister:
		return "register"
	case ActionLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// Route targets.
const (
	WelcomePath = "/welcome"
	LoginPath   = router.LoginPath
)

// RegisteredState is carried to the login page after a registration so it
// can tell the user a verification mail went out.
type RegisteredState struct {
	Email string
}

// Decision is what the UI should do with an outcome.
type Decision struct {
	// Navigate is false when the user stays on the current page.
	Navigate bool
	Target   router.Location

	// Message is shown on the current page when Navigate is false.
	Message string
}

// OnAuthResult maps an outcome to a Decision. email is only used for
// registration, where it travels to the login page as transient state.
func OnAuthResult(action Action, out api.Outcome, email string) Decision {
	switch action {
	case ActionLogout:
		// The user is leaving regardless of what the server said.
		return Decision{Navigate: true, Target: router.At(LoginPath)}

	case ActionLogin:
		if !out.OK() {
			return stay(out)
		}
		return Decision{Navigate: true, Target: router.At(WelcomePath)}

	case ActionRegister:
		if !out.OK() {
			return stay(out)
		}
		return Decision{
			Navigate: true,
			Target:   router.At(LoginPath).WithState(RegisteredState{Email: email}),
		}
	}
	return Decision{Message: api.GenericErrorMessage}
}

func stay(out api.Outcome) Decision {
	msg := out.ErrorMessage()
	if msg == "" {
		msg = api.GenericErrorMessage
	}
	return Decision{Message: msg}
}
