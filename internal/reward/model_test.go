package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
)

// S5 — Reward: filling a new required field (spec.md §8).
func TestEvaluate_S5FillingNewRequiredField(t *testing.T) {
	m := NewModel()
	prev := dom.State{
		Metadata:           map[string]string{"filled:n_name": "false"},
		InteractionHistory: []string{},
	}
	next := dom.State{
		Metadata:           map[string]string{"filled:n_name": "true"},
		InteractionHistory: []string{"type:n_name:x_text:"},
	}
	action := actionspace.NewType("n_name", "x_text")

	breakdown := m.Evaluate(prev, action, next, false, false)

	assert.GreaterOrEqual(t, breakdown.Progress, 0.70)
	assert.Equal(t, 0.0, breakdown.Risk)
	assert.InDelta(t, -0.02, breakdown.Efficiency, 1e-9)
	assert.Equal(t, 0.0, breakdown.Terminal)
}

func TestEvaluate_TypeOnAlreadyFilledFieldIsSmallProgress(t *testing.T) {
	m := NewModel()
	prev := dom.State{Metadata: map[string]string{"filled:n_name": "true"}}
	next := dom.State{Metadata: map[string]string{"filled:n_name": "true"}}
	action := actionspace.NewType("n_name", "x_text")

	breakdown := m.Evaluate(prev, action, next, false, false)
	assert.InDelta(t, 0.10, breakdown.Progress, 1e-9)
}

func TestEvaluate_ClickSubmitWithAllRequiredFilled(t *testing.T) {
	m := NewModel()
	prev := dom.State{Metadata: map[string]string{}}
	next := dom.State{Metadata: map[string]string{"all_required_filled": "true"}}
	action := actionspace.NewClick("n_submit", false)

	breakdown := m.Evaluate(prev, action, next, false, false)
	assert.InDelta(t, 0.80, breakdown.Progress, 1e-9)
}

// S6 — Destructive risk (spec.md §8).
func TestEvaluate_S6DestructiveRisk(t *testing.T) {
	m := NewModel()
	action := actionspace.NewClick("n_cancel", true)

	breakdown := m.Evaluate(dom.State{}, action, dom.State{}, false, false)
	assert.Equal(t, -0.80, breakdown.Risk)
}

func TestEvaluate_TerminalSuccessAndFailure(t *testing.T) {
	m := NewModel()
	action := actionspace.NewClick("n_submit", false)

	success := m.Evaluate(dom.State{}, action, dom.State{}, true, true)
	failure := m.Evaluate(dom.State{}, action, dom.State{}, true, false)

	assert.Equal(t, 1.0, success.Terminal)
	assert.Equal(t, -1.0, failure.Terminal)
}

func TestEvaluate_HistoryGrowthBonus(t *testing.T) {
	m := NewModel()
	prev := dom.State{InteractionHistory: []string{}}
	next := dom.State{InteractionHistory: []string{"scroll:viewport:300:"}}
	action := actionspace.NewScroll("viewport", "300")

	breakdown := m.Evaluate(prev, action, next, false, false)
	assert.InDelta(t, -0.05+0.02, breakdown.Progress, 1e-9)
}

func TestEvaluate_TotalIsSumOfComponents(t *testing.T) {
	m := NewModel()
	action := actionspace.NewClick("n_cancel", true)
	breakdown := m.Evaluate(dom.State{}, action, dom.State{}, true, false)

	assert.Equal(t, breakdown.Progress+breakdown.Risk+breakdown.Efficiency+breakdown.Terminal, breakdown.Total)
}
