package screen

import (
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/learnpath/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ViewID identifies one mounted screen instance.
type ViewID string

// NewViewID returns a fresh id.
func NewViewID() ViewID {
	return ViewID(uuid.NewString())
}

// Identified is implemented by screens that receive addressed messages.
type Identified interface {
	ViewID() ViewID
}

// Addressed is implemented by async result messages meant for a single
// screen instance. The router delivers them only to that instance and
// drops them once it is gone.
type Addressed interface {
	Target() ViewID
}
