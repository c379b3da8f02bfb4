package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Fields is a vertical group of text inputs with one focused at a time.
// Tab and the arrow keys move focus; every other key goes to the focused
// input.
type Fields struct {
	Inputs []TextInput
	Focus  int
}

// NewFields creates the group and focuses the first input.
func NewFields(inputs ...TextInput) Fields {
	f := Fields{Inputs: inputs}
	if len(f.Inputs) > 0 {
		f.Inputs[0].Focus()
	}
	return f
}

// Init focuses the current input so its cursor starts blinking.
func (f *Fields) Init() tea.Cmd {
	if len(f.Inputs) == 0 {
		return nil
	}
	return f.Inputs[f.Focus].Focus()
}

// Move shifts focus by delta, wrapping around.
func (f *Fields) Move(delta int) tea.Cmd {
	n := len(f.Inputs)
	if n == 0 {
		return nil
	}
	f.Inputs[f.Focus].Blur()
	f.Focus = ((f.Focus+delta)%n + n) % n
	return f.Inputs[f.Focus].Focus()
}

// Update handles focus movement and forwards other messages to the focused
// input. changed reports whether the focused input's value changed.
func (f Fields) Update(msg tea.Msg) (Fields, tea.Cmd, bool) {
	if len(f.Inputs) == 0 {
		return f, nil, false
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f, f.Move(1), false
		case "shift+tab", "up":
			return f, f.Move(-1), false
		}
	}

	before := f.Inputs[f.Focus].Value()
	var cmd tea.Cmd
	f.Inputs[f.Focus], cmd = f.Inputs[f.Focus].Update(msg)
	return f, cmd, f.Inputs[f.Focus].Value() != before
}

// Focused returns the focused input.
func (f Fields) Focused() TextInput {
	return f.Inputs[f.Focus]
}

// View renders the inputs one per line.
func (f Fields) View() string {
	lines := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		lines[i] = in.View()
	}
	return strings.Join(lines, "\n")
}
