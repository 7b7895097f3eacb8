package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_DefaultsOnMissingFields(t *testing.T) {
	state := Decode(Snapshot{})

	assert.Equal(t, "about:blank", state.URL)
	assert.Empty(t, state.Nodes)
	assert.False(t, state.HasFocusedNodeID)
	assert.Equal(t, 0, state.Step)
}

func TestDecode_NodeDefaultsAndLowercaseTag(t *testing.T) {
	trueVal := true
	state := Decode(Snapshot{
		Nodes: []RawNode{
			{Tag: "INPUT", Visible: &trueVal},
			{ID: "n_named", Tag: "Button"},
		},
	})

	assert.Len(t, state.Nodes, 2)
	assert.Equal(t, "input", state.Nodes["n0"].Tag)
	assert.True(t, state.Nodes["n0"].Visible)
	assert.False(t, state.Nodes["n0"].Interactable)

	named := state.Nodes["n_named"]
	assert.Equal(t, "button", named.Tag)
	assert.True(t, named.Visible, "visible defaults true when unspecified")
}

func TestDecode_FocusedNodeIDAndHistoryAndMetadata(t *testing.T) {
	focused := "n_email"
	state := Decode(Snapshot{
		FocusedNodeID: &focused,
		History:       []string{"click:n_submit:_:"},
		Metadata:      map[string]string{"scrollable": "true"},
		Step:          3,
	})

	assert.True(t, state.HasFocusedNodeID)
	assert.Equal(t, "n_email", state.FocusedNodeID)
	assert.Equal(t, []string{"click:n_submit:_:"}, state.InteractionHistory)
	assert.Equal(t, "true", state.Metadata["scrollable"])
	assert.Equal(t, 3, state.Step)
}
