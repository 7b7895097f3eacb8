// Package policy provides the heuristic prior scoring used both as the
// PUCT exploration weight and for top-K candidate pruning.
package policy

import (
	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
)

const floor = 0.01

// Prior is a heuristic prior policy over candidate actions.
type Prior struct{}

// NewPrior builds the default heuristic prior policy.
func NewPrior() *Prior {
	return &Prior{}
}

// Score returns a value in [0.01, +inf), order-preserving and stable
// across calls with equal inputs. The 0.01 floor keeps PUCT exploration
// non-zero even for a heavily penalized candidate.
func (p *Prior) Score(state dom.State, action actionspace.Action) float64 {
	score := 0.05

	switch action.ActionType {
	case actionspace.Type:
		score += 0.45
		if action.HasNodeID && state.Metadata["filled:"+action.NodeID] == "true" {
			score -= 0.35
		}
		if action.HasNodeID {
			if node, ok := state.Nodes[action.NodeID]; ok && node.Attributes["required"] == "true" {
				score += 0.40
			}
		}

	case actionspace.Click:
		score += 0.20
		if action.HasNodeID && action.NodeID == "n_submit" {
			score += 0.40
			if state.Metadata["all_required_filled"] != "true" {
				score -= 0.45
			}
		}

	case actionspace.Select:
		score += 0.15

	case actionspace.Scroll:
		score -= 0.08
	}

	if action.IsDestructive() {
		score -= 0.50
	}

	if score < floor {
		return floor
	}
	return score
}
