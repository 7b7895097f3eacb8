package actionspace

import (
	"sort"
	"strings"

	"github.com/kestrel-labs/domplanner/internal/dom"
)

// Generator produces a canonical, deduplicated, ordered list of candidate
// actions from a DOM state. It is a pure function: it never fails, and
// malformed attribute strings are treated as their defaults.
type Generator struct {
	// DefaultInputText is used for input/textarea nodes that have no
	// "placeholder" attribute.
	DefaultInputText string
}

// NewGenerator builds a Generator with the given default input text.
func NewGenerator(defaultInputText string) *Generator {
	if defaultInputText == "" {
		defaultInputText = "sample_value"
	}
	return &Generator{DefaultInputText: defaultInputText}
}

// Enumerate returns the candidate actions for state, sorted by canonical
// form and deduplicated by canonical form.
func (g *Generator) Enumerate(state dom.State) []Action {
	var candidates []Action

	for _, nodeID := range state.SortedNodeIDs() {
		node := state.Nodes[nodeID]
		if !node.Visible {
			continue
		}

		if node.Interactable {
			candidates = append(candidates, NewClick(nodeID, node.Attributes["destructive"] == "true"))
		}

		if node.Interactable && (node.Tag == "input" || node.Tag == "textarea") {
			placeholder := node.Attributes["placeholder"]
			if placeholder == "" {
				placeholder = g.DefaultInputText
			}
			candidates = append(candidates, NewType(nodeID, placeholder+"_text"))
		}

		if node.Interactable && node.Tag == "select" {
			options := node.Attributes["options"]
			firstOption := "option_1"
			if options != "" {
				firstOption = strings.TrimSpace(strings.SplitN(options, ",", 2)[0])
			}
			candidates = append(candidates, NewSelect(nodeID, firstOption))
		}
	}

	if state.MetadataOrDefault("scrollable", "true") == "true" {
		candidates = append(candidates, NewScroll("viewport", "300"))
	}

	return deduplicate(candidates)
}

// deduplicate collapses candidates by canonical form (last write wins, per
// spec) and returns them sorted by canonical form.
func deduplicate(candidates []Action) []Action {
	byCanonical := make(map[string]Action, len(candidates))
	for _, a := range candidates {
		byCanonical[a.Canonical()] = a
	}

	keys := make([]string, 0, len(byCanonical))
	for k := range byCanonical {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Action, len(keys))
	for i, k := range keys {
		out[i] = byCanonical[k]
	}
	return out
}
