// Command domplanner runs the DOM-grounded MCTS planner against the
// reference mock form environment: a single plan() dump, a full
// re-planning episode, or a batch evaluation.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	cfgpkg "github.com/kestrel-labs/domplanner/internal/config"
	"github.com/kestrel-labs/domplanner/internal/environment"
	"github.com/kestrel-labs/domplanner/internal/eval"
	"github.com/kestrel-labs/domplanner/internal/planning"
	"github.com/kestrel-labs/domplanner/internal/policy"
	"github.com/kestrel-labs/domplanner/internal/reward"
	"github.com/kestrel-labs/domplanner/internal/runner"
	"github.com/kestrel-labs/domplanner/internal/trace"
)

var (
	configPath string
	logger     = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

func buildRunner(cfg cfgpkg.Config) *runner.AgentRunner {
	actionGenerator := actionspace.NewGenerator(cfg.DefaultInputText)
	rewardModel := reward.NewModel()
	priorPolicy := policy.NewPrior()
	planner := planning.NewMCTSPlanner(actionGenerator, rewardModel, priorPolicy, cfg.MCTSConfig(), logger)
	return runner.NewAgentRunner(planner, cfg.ExecutePrefix, trace.NewRecorder(), logger)
}

func loadConfig() (cfgpkg.Config, error) {
	cfg, err := cfgpkg.Load(configPath)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "domplanner",
		Short: "DOM-grounded MCTS planner for autonomous browser agents",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file overriding planner/runner defaults")
	root.AddCommand(newRunCmd(), newEvalCmd(), newPlanCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run one episode against the reference mock form environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			agentRunner := buildRunner(cfg)
			env := environment.NewMockBrowserEnv(8)
			result := agentRunner.RunEpisode(env, cfg.MaxIterations)

			fmt.Printf("episode: %s\n", result.ID)
			fmt.Printf("success: %t\n", result.Success)
			fmt.Printf("steps: %d\n", result.Steps)
			fmt.Println("executed actions:")
			for i, action := range result.ExecutedActions {
				fmt.Printf("  %d. %s\n", i+1, action.Canonical())
			}
			return nil
		},
	}
}

func newEvalCmd() *cobra.Command {
	var episodes int
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "batch-evaluate the planner over independent episodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			agentRunner := buildRunner(cfg)
			summary := eval.Evaluate(agentRunner, func() environment.Environment {
				return environment.NewMockBrowserEnv(8)
			}, episodes, cfg.MaxIterations)

			fmt.Printf("episodes: %d\n", summary.Episodes)
			fmt.Printf("success_rate: %.2f\n", summary.SuccessRate)
			fmt.Printf("avg_steps: %.2f\n", summary.AvgSteps)
			return nil
		},
	}
	cmd.Flags().IntVar(&episodes, "episodes", 3, "number of episodes to run")
	return cmd
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "run a single plan() call against the initial form state and print the plan prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			actionGenerator := actionspace.NewGenerator(cfg.DefaultInputText)
			rewardModel := reward.NewModel()
			priorPolicy := policy.NewPrior()
			planner := planning.NewMCTSPlanner(actionGenerator, rewardModel, priorPolicy, cfg.MCTSConfig(), logger)

			env := environment.NewMockBrowserEnv(8)
			result := planner.Plan(env)

			fmt.Printf("estimated_value: %.4f\n", result.EstimatedValue)
			fmt.Printf("simulations_run: %d\n", result.SimulationsRun)
			fmt.Println("plan:")
			for i, action := range result.Actions {
				fmt.Printf("  %d. %s\n", i+1, action.Canonical())
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.WithError(err).Error("domplanner: command failed")
		os.Exit(1)
	}
}
