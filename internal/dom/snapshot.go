package dom

import (
	"fmt"
	"strings"
)

// RawNode is the wire shape of a single node in a browser snapshot, as
// produced by an environment binding before canonicalization. Unknown or
// missing fields default; all attribute values coerce to strings.
type RawNode struct {
	ID           string
	Tag          string
	Text         string
	Attributes   map[string]string
	Visible      *bool
	Interactable *bool
	Role         *string
	Children     []string
}

// Snapshot is the wire shape of a full page observation accepted by the
// environment adapter (spec.md §6 "Snapshot decoding").
type Snapshot struct {
	URL            string
	Nodes          []RawNode
	FocusedNodeID  *string
	History        []string
	Metadata       map[string]string
	Step           int
}

// Decode converts a raw snapshot into a canonical State. It never fails:
// malformed or absent fields fall back to their documented defaults.
func Decode(snap Snapshot) State {
	url := snap.URL
	if url == "" {
		url = "about:blank"
	}

	nodes := make(map[string]Node, len(snap.Nodes))
	for index, raw := range snap.Nodes {
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("n%d", index)
		}

		tag := raw.Tag
		if tag == "" {
			tag = "div"
		}

		attrs := make(map[string]string, len(raw.Attributes))
		for k, v := range raw.Attributes {
			attrs[k] = v
		}

		visible := true
		if raw.Visible != nil {
			visible = *raw.Visible
		}
		interactable := false
		if raw.Interactable != nil {
			interactable = *raw.Interactable
		}

		node := Node{
			NodeID:       id,
			Tag:          strings.ToLower(tag),
			Text:         raw.Text,
			Attributes:   attrs,
			Visible:      visible,
			Interactable: interactable,
			Children:     append([]string(nil), raw.Children...),
		}
		if raw.Role != nil {
			node.Role = *raw.Role
			node.HasRole = true
		}
		nodes[id] = node
	}

	history := append([]string(nil), snap.History...)

	metadata := make(map[string]string, len(snap.Metadata))
	for k, v := range snap.Metadata {
		metadata[k] = v
	}

	state := State{
		URL:                url,
		Nodes:              nodes,
		InteractionHistory: history,
		Metadata:           metadata,
		Step:               snap.Step,
	}
	if snap.FocusedNodeID != nil {
		state.FocusedNodeID = *snap.FocusedNodeID
		state.HasFocusedNodeID = true
	}

	return Canonicalize(state)
}

// Canonicalize returns a deep copy of state. The copy's Nodes and Metadata
// are still plain maps with no guaranteed iteration order; callers who
// serialize or hash a state (traces, dedup, logging) get a deterministic
// node order from SortedNodeIDs. There is no sorted-key helper for
// Metadata.
func Canonicalize(state State) State {
	return state.Clone()
}
