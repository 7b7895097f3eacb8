// Package eval provides a batch evaluation harness over AgentRunner
// episodes.
package eval

import (
	"github.com/kestrel-labs/domplanner/internal/environment"
	"github.com/kestrel-labs/domplanner/internal/runner"
)

// Summary aggregates the outcome of a batch of episodes.
type Summary struct {
	Episodes    int
	SuccessRate float64
	AvgSteps    float64
}

// EnvFactory builds a fresh environment for one episode.
type EnvFactory func() environment.Environment

// Evaluate runs episodes-many episodes through r against envFactory and
// reports success rate and average steps.
func Evaluate(r *runner.AgentRunner, envFactory EnvFactory, episodes int, maxIterations int) Summary {
	successes := 0
	steps := 0

	for i := 0; i < episodes; i++ {
		result := r.RunEpisode(envFactory(), maxIterations)
		if result.Success {
			successes++
		}
		steps += result.Steps
	}

	summary := Summary{Episodes: episodes}
	if episodes > 0 {
		summary.SuccessRate = float64(successes) / float64(episodes)
		summary.AvgSteps = float64(steps) / float64(episodes)
	}
	return summary
}
