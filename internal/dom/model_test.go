package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateClone_IsDeepAndIndependent(t *testing.T) {
	original := State{
		URL: "https://mock.local/form",
		Nodes: map[string]Node{
			"n_name": {NodeID: "n_name", Tag: "input", Attributes: map[string]string{"required": "true"}},
		},
		InteractionHistory: []string{"click:n_submit:_:"},
		Metadata:           map[string]string{"scrollable": "true"},
		Step:               2,
	}

	clone := original.Clone()
	clone.Nodes["n_name"] = Node{NodeID: "n_name", Tag: "mutated"}
	clone.Metadata["scrollable"] = "false"
	clone.InteractionHistory[0] = "mutated"

	assert.Equal(t, "input", original.Nodes["n_name"].Tag)
	assert.Equal(t, "true", original.Metadata["scrollable"])
	assert.Equal(t, "click:n_submit:_:", original.InteractionHistory[0])
}

func TestState_SortedNodeIDs_IsLexicographic(t *testing.T) {
	state := State{
		Nodes: map[string]Node{
			"n_submit": {},
			"n_cancel": {},
			"n_email":  {},
			"n_name":   {},
		},
	}

	assert.Equal(t, []string{"n_cancel", "n_email", "n_name", "n_submit"}, state.SortedNodeIDs())
}

func TestState_MetadataOrDefault(t *testing.T) {
	state := State{Metadata: map[string]string{"scrollable": "false"}}

	assert.Equal(t, "false", state.MetadataOrDefault("scrollable", "true"))
	assert.Equal(t, "true", state.MetadataOrDefault("missing_key", "true"))
}

func TestNewRewardBreakdown_TotalIsSumOfComponents(t *testing.T) {
	breakdown := NewRewardBreakdown(0.7, -0.8, -0.02, 1.0)
	assert.Equal(t, breakdown.Progress+breakdown.Risk+breakdown.Efficiency+breakdown.Terminal, breakdown.Total)
	assert.InDelta(t, 0.88, breakdown.Total, 1e-9)
}
