// Package progress tracks whether a course node is finished and drives the
// "I know this" control.
package progress

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/components"
)

// Marker records that a node is already known.
type Marker interface {
	MarkNodeKnown(ctx context.Context, nodeID string) api.Outcome
}

// NodeProgress is the view model for one node. At most one mark-known
// request is in flight at a time.
type NodeProgress struct {
	NodeID   string
	Finished bool
	Loading  bool

	// Err is the message from the last failed request.
	Err string

	// Owner addresses SettledMsg to the screen holding this model.
	Owner screen.ViewID
}

// New returns the view model for nodeID, owned by the given screen.
func New(nodeID string, finished bool, owner screen.ViewID) *NodeProgress {
	return &NodeProgress{NodeID: nodeID, Finished: finished, Owner: owner}
}

// SettledMsg carries the outcome of a mark-known request.
type SettledMsg struct {
	Owner   screen.ViewID
	NodeID  string
	Outcome api.Outcome
}

// Target implements screen.Addressed.
func (m SettledMsg) Target() screen.ViewID { return m.Owner }

// MarkAsKnown starts a mark-known request. It returns nil without sending
// anything while a previous request is still loading or once the node is
// finished.
func (p *NodeProgress) MarkAsKnown(ctx context.Context, marker Marker) tea.Cmd {
	if p.Loading || p.Finished {
		return nil
	}
	p.Loading = true
	p.Err = ""

	owner, nodeID := p.Owner, p.NodeID
	return func() tea.Msg {
		return SettledMsg{
			Owner:   owner,
			NodeID:  nodeID,
			Outcome: marker.MarkNodeKnown(ctx, nodeID),
		}
	}
}

// Apply folds a settled request into the model. Messages for another node
// are ignored.
func (p *NodeProgress) Apply(msg SettledMsg) {
	if msg.NodeID != p.NodeID {
		return
	}
	p.Loading = false
	if msg.Outcome.OK() {
		p.Finished = true
		p.Err = ""
		return
	}
	p.Err = msg.Outcome.ErrorMessage()
	if p.Err == "" {
		p.Err = api.GenericErrorMessage
	}
}

// Variant is the visual state of the progress button.
type Variant int

const (
	VariantKnow Variant = iota
	VariantPending
	VariantFinished
)

func (v Variant) String() string {
	switch v {
	case VariantPending:
		return "pending"
	case VariantFinished:
		return "finished"
	default:
		return "know"
	}
}

// VariantFor picks the button variant. Finished wins over loading.
func VariantFor(finished, loading bool) Variant {
	switch {
	case finished:
		return VariantFinished
	case loading:
		return VariantPending
	default:
		return VariantKnow
	}
}

// Variant returns the current button variant.
func (p *NodeProgress) Variant() Variant {
	return VariantFor(p.Finished, p.Loading)
}

// Button builds the progress button for v. Only VariantKnow is pressable.
func Button(v Variant, tr *i18n.Translator, onPress func() tea.Cmd) components.Button {
	switch v {
	case VariantFinished:
		return components.Button{Label: tr.T("Finished ✓"), Disabled: true}
	case VariantPending:
		return components.Button{Label: tr.T("Saving…"), Disabled: true}
	default:
		return components.Button{Label: tr.T("I know this"), Active: true, OnPress: onPress}
	}
}
