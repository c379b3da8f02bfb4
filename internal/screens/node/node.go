package node

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/progress"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// NodeScreen shows one course node and lets the learner mark it known.
type NodeScreen struct {
	id          screen.ViewID
	marker      progress.Marker
	tr          *i18n.Translator
	environment string
	name        string
	progress    *progress.NodeProgress
}

var _ screen.Screen = (*NodeScreen)(nil)
var _ screen.Identified = (*NodeScreen)(nil)
var _ screen.KeyHintProvider = (*NodeScreen)(nil)

// New creates the node page from a route match such as
// /{environmentType}?node_id=42&node_name=Loops&finished=true. The
// shorter name parameter is accepted as an alias.
func New(marker progress.Marker, tr *i18n.Translator, req router.Request) *NodeScreen {
	id := screen.NewViewID()
	loc := req.Location
	finished := loc.Param("finished") == "true" || loc.Param("finished") == "1"
	name := loc.Param("node_name")
	if name == "" {
		name = loc.Param("name")
	}

	return &NodeScreen{
		id:          id,
		marker:      marker,
		tr:          tr,
		environment: req.Params["environmentType"],
		name:        name,
		progress:    progress.New(loc.Param("node_id"), finished, id),
	}
}

func (n *NodeScreen) ViewID() screen.ViewID {
	return n.id
}

func (n *NodeScreen) Init() tea.Cmd {
	return nil
}

func (n *NodeScreen) Title() string {
	return n.tr.T("Node")
}

func (n *NodeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: n.tr.T("I know this")},
		{Key: "Esc", Description: n.tr.T("Back")},
	}
}

// Progress exposes the view model.
func (n *NodeScreen) Progress() *progress.NodeProgress {
	return n.progress
}

func (n *NodeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.SettledMsg:
		if msg.Owner == n.id {
			n.progress.Apply(msg)
		}
		return n, nil

	case tea.KeyMsg:
		_, cmd := n.button().Update(msg)
		return n, cmd
	}
	return n, nil
}

func (n *NodeScreen) button() components.Button {
	return progress.Button(n.progress.Variant(), n.tr, n.markKnown)
}

func (n *NodeScreen) markKnown() tea.Cmd {
	return n.progress.MarkAsKnown(context.Background(), n.marker)
}

func (n *NodeScreen) View(width, height int) string {
	title := n.name
	if title == "" {
		title = n.progress.NodeID
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(n.tr.T("Node") + ": " + n.progress.NodeID))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(n.tr.T("Environment") + ": " + n.environment))
	b.WriteString("\n\n")
	b.WriteString(n.button().View())

	if n.progress.Err != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorBanner.Render(n.progress.Err))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
