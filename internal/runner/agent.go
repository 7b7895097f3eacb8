// Package runner drives the online re-planning loop around the MCTS
// planner: observe, search, execute a plan prefix, repeat.
package runner

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/environment"
	"github.com/kestrel-labs/domplanner/internal/planning"
	"github.com/kestrel-labs/domplanner/internal/trace"
)

// EpisodeResult is the outcome of one run_episode call.
type EpisodeResult struct {
	ID              string
	Success         bool
	Steps           int
	ExecutedActions []actionspace.Action
	FinalPlan       *planning.PlanResult
}

// AgentRunner repeatedly calls the planner, then executes the leading
// execute_prefix actions of the returned plan against the real
// environment before replanning.
type AgentRunner struct {
	planner       *planning.MCTSPlanner
	executePrefix int
	traceRecorder *trace.Recorder
	logger        *logrus.Logger
}

// NewAgentRunner builds a runner. executePrefix is clamped to at least 1.
// traceRecorder and logger are optional; a nil logger defaults to a
// warn-level logrus.Logger.
func NewAgentRunner(planner *planning.MCTSPlanner, executePrefix int, traceRecorder *trace.Recorder, logger *logrus.Logger) *AgentRunner {
	if executePrefix < 1 {
		executePrefix = 1
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &AgentRunner{
		planner:       planner,
		executePrefix: executePrefix,
		traceRecorder: traceRecorder,
		logger:        logger,
	}
}

// RunEpisode runs up to maxIterations re-planning cycles, or until env
// reaches a terminal state.
func (r *AgentRunner) RunEpisode(env environment.Environment, maxIterations int) EpisodeResult {
	episodeID := uuid.NewString()
	var executed []actionspace.Action
	var finalPlan *planning.PlanResult

	for iteration := 0; iteration < maxIterations; iteration++ {
		if env.IsTerminal() {
			break
		}

		planResult := r.planner.Plan(env)
		finalPlan = &planResult
		if len(planResult.Actions) == 0 {
			r.logger.WithField("episode_id", episodeID).Debug("runner: empty plan, stopping")
			break
		}

		if r.traceRecorder != nil {
			r.traceRecorder.RecordPlan(planResult.Actions)
		}

		prefixLen := r.executePrefix
		if prefixLen > len(planResult.Actions) {
			prefixLen = len(planResult.Actions)
		}

		for _, action := range planResult.Actions[:prefixLen] {
			prevState := env.Observe()
			nextState := env.Apply(action)
			executed = append(executed, action)

			if r.traceRecorder != nil {
				r.traceRecorder.RecordAction(prevState, action, nextState)
			}
			if env.IsTerminal() {
				break
			}
		}
	}

	return EpisodeResult{
		ID:              episodeID,
		Success:         env.IsSuccess(),
		Steps:           len(executed),
		ExecutedActions: executed,
		FinalPlan:       finalPlan,
	}
}
