// Package reward provides the heuristic reward model the planner consumes
// for rollout scoring and backup.
package reward

import (
	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
)

// Model is a heuristic, additive reward model. Evaluate is a pure
// function of its arguments.
type Model struct{}

// NewModel builds the default heuristic reward model.
func NewModel() *Model {
	return &Model{}
}

// Evaluate scores a single state transition.
func (m *Model) Evaluate(prev dom.State, action actionspace.Action, next dom.State, isTerminal, isSuccess bool) dom.RewardBreakdown {
	progress := m.progressReward(prev, action, next)
	risk := m.riskPenalty(action)
	efficiency := -0.02

	terminal := 0.0
	if isTerminal {
		if isSuccess {
			terminal = 1.0
		} else {
			terminal = -1.0
		}
	}

	return dom.NewRewardBreakdown(progress, risk, efficiency, terminal)
}

func (m *Model) progressReward(prev dom.State, action actionspace.Action, next dom.State) float64 {
	reward := 0.0

	if action.ActionType == actionspace.Type && action.HasNodeID {
		wasFilled := prev.Metadata["filled:"+action.NodeID] == "true"
		isFilled := next.Metadata["filled:"+action.NodeID] == "true"
		if !wasFilled && isFilled {
			reward += 0.70
		} else {
			reward += 0.10
		}
	}

	if action.ActionType == actionspace.Click {
		reward += 0.10
		if action.HasNodeID && action.NodeID == "n_submit" && next.Metadata["all_required_filled"] == "true" {
			reward += 0.70
		}
	}

	if action.ActionType == actionspace.Select {
		reward += 0.20
	}

	if action.ActionType == actionspace.Scroll {
		reward -= 0.05
	}

	if len(next.InteractionHistory) > len(prev.InteractionHistory) {
		reward += 0.02
	}

	return reward
}

func (m *Model) riskPenalty(action actionspace.Action) float64 {
	if action.IsDestructive() {
		return -0.80
	}
	return 0.0
}
