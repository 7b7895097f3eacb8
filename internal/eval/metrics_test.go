package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/environment"
	"github.com/kestrel-labs/domplanner/internal/planning"
	"github.com/kestrel-labs/domplanner/internal/policy"
	"github.com/kestrel-labs/domplanner/internal/reward"
	"github.com/kestrel-labs/domplanner/internal/runner"
)

func TestEvaluate_SuccessRateAndAvgSteps(t *testing.T) {
	planner := planning.NewMCTSPlanner(
		actionspace.NewGenerator("seed"),
		reward.NewModel(),
		policy.NewPrior(),
		planning.MCTSConfig{Simulations: 60, ExplorationConstant: 1.4, RolloutDepth: 5, TopKActions: 8, Discount: 0.96},
		nil,
	)
	r := runner.NewAgentRunner(planner, 1, nil, nil)

	summary := Evaluate(r, func() environment.Environment {
		return environment.NewMockBrowserEnv(8)
	}, 3, 10)

	assert.Equal(t, 3, summary.Episodes)
	assert.Equal(t, 1.0, summary.SuccessRate)
	assert.Greater(t, summary.AvgSteps, 0.0)
}

func TestEvaluate_ZeroEpisodes(t *testing.T) {
	planner := planning.NewMCTSPlanner(actionspace.NewGenerator("seed"), reward.NewModel(), policy.NewPrior(), planning.DefaultMCTSConfig(), nil)
	r := runner.NewAgentRunner(planner, 1, nil, nil)

	summary := Evaluate(r, func() environment.Environment {
		return environment.NewMockBrowserEnv(8)
	}, 0, 10)

	assert.Equal(t, 0, summary.Episodes)
	assert.Equal(t, 0.0, summary.SuccessRate)
	assert.Equal(t, 0.0, summary.AvgSteps)
}
