// Package dom holds the passive data model for a DOM-grounded planning
// episode: nodes, state snapshots, the task objective, and reward
// breakdowns. Every type here is a value type with no behavior beyond
// copying and deterministic ordering.
package dom

import "sort"

// Node is a canonical, model-friendly DOM node.
//
// Child references are resolved only through the owning State's Nodes map;
// a dangling child id is tolerated and treated as absent.
type Node struct {
	NodeID       string
	Tag          string
	Text         string
	Attributes   map[string]string
	Visible      bool
	Interactable bool
	Role         string
	HasRole      bool
	Children     []string
}

// Clone returns a deep, independent copy of the node.
func (n Node) Clone() Node {
	attrs := make(map[string]string, len(n.Attributes))
	for k, v := range n.Attributes {
		attrs[k] = v
	}
	children := make([]string, len(n.Children))
	copy(children, n.Children)
	n.Attributes = attrs
	n.Children = children
	return n
}

// State is a structured snapshot of a page used by the planner.
type State struct {
	URL                string
	Nodes              map[string]Node
	FocusedNodeID      string
	HasFocusedNodeID   bool
	InteractionHistory []string
	Metadata           map[string]string
	Step               int
}

// Clone returns a deep, independent copy of the state. States are
// value-typed; callers must clone before handing a state to code that may
// mutate it (e.g. across environment clones).
func (s State) Clone() State {
	nodes := make(map[string]Node, len(s.Nodes))
	for id, n := range s.Nodes {
		nodes[id] = n.Clone()
	}
	history := make([]string, len(s.InteractionHistory))
	copy(history, s.InteractionHistory)
	metadata := make(map[string]string, len(s.Metadata))
	for k, v := range s.Metadata {
		metadata[k] = v
	}
	s.Nodes = nodes
	s.InteractionHistory = history
	s.Metadata = metadata
	return s
}

// SortedNodeIDs returns the state's node ids in canonical (lexicographic)
// order. Iteration over Nodes must always go through this helper so that
// enumeration and encoding stay deterministic.
func (s State) SortedNodeIDs() []string {
	ids := make([]string, 0, len(s.Nodes))
	for id := range s.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MetadataOrDefault returns s.Metadata[key] if present, otherwise def.
func (s State) MetadataOrDefault(key, def string) string {
	if v, ok := s.Metadata[key]; ok {
		return v
	}
	return def
}

// TaskSpec is the immutable objective description for an episode. Only
// SuccessText is consulted by heuristics, and only optionally.
type TaskSpec struct {
	Objective   string
	SuccessText string
}

// DefaultTaskSpec mirrors the reference mock-environment objective.
func DefaultTaskSpec() TaskSpec {
	return TaskSpec{
		Objective:   "Fill required fields and submit the form",
		SuccessText: "success",
	}
}

// RewardBreakdown is the additive decomposition of a single-step reward.
type RewardBreakdown struct {
	Progress   float64
	Risk       float64
	Efficiency float64
	Terminal   float64
	Total      float64
}

// NewRewardBreakdown builds a breakdown with Total computed as the sum of
// its components, preserving the invariant that Total always equals the
// sum regardless of how callers read the struct.
func NewRewardBreakdown(progress, risk, efficiency, terminal float64) RewardBreakdown {
	return RewardBreakdown{
		Progress:   progress,
		Risk:       risk,
		Efficiency: efficiency,
		Terminal:   terminal,
		Total:      progress + risk + efficiency + terminal,
	}
}
