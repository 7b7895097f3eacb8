// Package actionspace enumerates and canonicalizes candidate actions over a
// DOM state.
package actionspace

import (
	"sort"
	"strings"
)

// ActionType is the kind of a candidate action.
type ActionType string

const (
	Click    ActionType = "click"
	Type     ActionType = "type"
	Select   ActionType = "select"
	Scroll   ActionType = "scroll"
	Navigate ActionType = "navigate"
)

// Action is a value-typed candidate action. Two actions with equal
// Canonical() form must be treated as equal everywhere in the planner.
type Action struct {
	ActionType ActionType
	NodeID     string
	HasNodeID  bool
	Value      string
	HasValue   bool
	Metadata   map[string]string
}

// NewClick builds a click action, optionally flagged destructive.
func NewClick(nodeID string, destructive bool) Action {
	a := Action{ActionType: Click, NodeID: nodeID, HasNodeID: true}
	if destructive {
		a.Metadata = map[string]string{"destructive": "true"}
	}
	return a
}

// NewType builds a type action with the given value.
func NewType(nodeID, value string) Action {
	return Action{ActionType: Type, NodeID: nodeID, HasNodeID: true, Value: value, HasValue: true}
}

// NewSelect builds a select action with the given value.
func NewSelect(nodeID, value string) Action {
	return Action{ActionType: Select, NodeID: nodeID, HasNodeID: true, Value: value, HasValue: true}
}

// NewScroll builds a viewport scroll action.
func NewScroll(nodeID, value string) Action {
	return Action{ActionType: Scroll, NodeID: nodeID, HasNodeID: true, Value: value, HasValue: true}
}

// IsDestructive reports whether the action is flagged destructive.
func (a Action) IsDestructive() bool {
	return a.Metadata["destructive"] == "true"
}

// Canonical returns the action's stable identity string:
// "<action_type>:<node_id or \"_\">:<value or \"_\">:<k1=v1|k2=v2|...>"
// with metadata entries sorted lexicographically by key. This is the
// system's cross-boundary wire format: dedup key, tree/child-map key, and
// trace token.
func (a Action) Canonical() string {
	nodeID := "_"
	if a.HasNodeID && a.NodeID != "" {
		nodeID = a.NodeID
	}
	value := "_"
	if a.HasValue && a.Value != "" {
		value = a.Value
	}

	keys := make([]string, 0, len(a.Metadata))
	for k := range a.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+a.Metadata[k])
	}

	var b strings.Builder
	b.WriteString(string(a.ActionType))
	b.WriteByte(':')
	b.WriteString(nodeID)
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte(':')
	b.WriteString(strings.Join(pairs, "|"))
	return b.String()
}
