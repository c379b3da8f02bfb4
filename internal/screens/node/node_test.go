package node

import (
	"encoding/json"
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/i18n"
	"github.com/abhisek/learnpath/internal/progress"
	"github.com/abhisek/learnpath/internal/router"
)

func newTestNode(raw string, outcomes ...api.Outcome) (*NodeScreen, *api.MockClient) {
	mock := api.NewMockClient(outcomes...)
	svc := api.NewService(mock, api.DefaultConfig().Endpoints)
	req := router.Request{
		Location: router.ParseLocation(raw),
		Params:   map[string]string{"environmentType": "lab"},
	}
	return New(svc, i18n.New(language.English), req), mock
}

func enter(n *NodeScreen) tea.Cmd {
	_, cmd := n.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestMarkKnownFlow(t *testing.T) {
	n, mock := newTestNode("/lab?node_id=42&node_name=Loops", api.Success(http.StatusOK, nil))
	view := n.View(100, 30)
	assert.Contains(t, view, "I know this")
	assert.Contains(t, view, "Loops")
	assert.Contains(t, view, "lab")

	first := enter(n)
	second := enter(n)
	require.NotNil(t, first)
	assert.Nil(t, second, "button is disabled while loading")
	assert.Contains(t, n.View(100, 30), "Saving…")

	n.Update(first())
	assert.Equal(t, 1, mock.CallCount())
	assert.True(t, n.Progress().Finished)
	assert.Contains(t, n.View(100, 30), "Finished ✓")
	assert.Nil(t, enter(n), "finished nodes cannot be marked again")

	body, err := json.Marshal(mock.Calls[0].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodeId":"42"}`, string(body))
}

func TestMarkKnownFailureShowsBanner(t *testing.T) {
	n, _ := newTestNode("/lab?node_id=7", api.Failure(http.StatusUnauthorized, "authentication required"))

	n.Update(enter(n)())

	assert.False(t, n.Progress().Finished)
	assert.False(t, n.Progress().Loading)
	view := n.View(100, 30)
	assert.Contains(t, view, "authentication required")
	assert.Contains(t, view, "I know this")
}

func TestSettledForOtherViewIgnored(t *testing.T) {
	n, _ := newTestNode("/lab?node_id=7")
	n.Progress().Loading = true

	n.Update(progress.SettledMsg{Owner: "someone-else", NodeID: "7", Outcome: api.Success(http.StatusOK, nil)})

	assert.True(t, n.Progress().Loading)
	assert.False(t, n.Progress().Finished)
}

func TestFinishedFromQuery(t *testing.T) {
	n, mock := newTestNode("/lab?node_id=7&finished=true")
	assert.Contains(t, n.View(100, 30), "Finished ✓")
	assert.Nil(t, enter(n))
	assert.Equal(t, 0, mock.CallCount())
}

func TestNodeNameFromQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"/lab?node_id=42&node_name=Loops", "Loops"},
		{"/lab?node_id=42&name=Arrays", "Arrays"},
		{"/lab?node_id=42&node_name=Loops&name=Arrays", "Loops"},
		{"/lab?node_id=42", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, _ := newTestNode(tt.raw)
			assert.Contains(t, n.View(80, 20), tt.want)
		})
	}
}
