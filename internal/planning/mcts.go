// Package planning implements the DOM-grounded PUCT Monte Carlo Tree
// Search planner: tree growth, selection, reward-model-guided rollouts,
// discounted backup, and plan extraction.
package planning

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
	"github.com/kestrel-labs/domplanner/internal/environment"
)

// MCTSConfig holds the immutable-per-call tuning knobs for a planning run.
type MCTSConfig struct {
	// Simulations is the number of descent/expand/rollout/backup cycles.
	Simulations int
	// ExplorationConstant is the PUCT c.
	ExplorationConstant float64
	// RolloutDepth caps both selection descent and rollout depth.
	RolloutDepth int
	// TopKActions is the candidate-pruning width at every node.
	TopKActions int
	// Discount is gamma, applied inside rollouts and along backprop.
	Discount float64
}

// DefaultMCTSConfig returns the reference tuning (simulations=96,
// exploration_constant=1.4, rollout_depth=5, top_k_actions=12,
// discount=0.96).
func DefaultMCTSConfig() MCTSConfig {
	return MCTSConfig{
		Simulations:         96,
		ExplorationConstant: 1.4,
		RolloutDepth:        5,
		TopKActions:         12,
		Discount:            0.96,
	}
}

// ActionGenerator enumerates candidate actions from a state.
type ActionGenerator interface {
	Enumerate(state dom.State) []actionspace.Action
}

// PriorPolicy scores a candidate action for PUCT exploration weight and
// top-K pruning.
type PriorPolicy interface {
	Score(state dom.State, action actionspace.Action) float64
}

// RewardModel scores a single state transition.
type RewardModel interface {
	Evaluate(prev dom.State, action actionspace.Action, next dom.State, isTerminal, isSuccess bool) dom.RewardBreakdown
}

// TreeNode owns a DOM state and its search statistics. The tree is owned
// by a single Plan call and discarded at return; there is no cross-call
// persistence.
type TreeNode struct {
	State            dom.State
	Parent           *TreeNode
	ActionFromParent actionspace.Action
	HasAction        bool
	Prior            float64
	Visits           int
	ValueSum         float64
	Children         map[string]*TreeNode
	// ChildOrder records child insertion order so that PUCT tie-breaking
	// and plan extraction stay deterministic regardless of Go's
	// randomized map iteration.
	ChildOrder []string
}

func newTreeNode(state dom.State) *TreeNode {
	return &TreeNode{State: state, Children: make(map[string]*TreeNode)}
}

// QValue is ValueSum/Visits, or 0 when the node has never been visited.
func (n *TreeNode) QValue() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.ValueSum / float64(n.Visits)
}

func (n *TreeNode) addChild(canonical string, child *TreeNode) {
	n.Children[canonical] = child
	n.ChildOrder = append(n.ChildOrder, canonical)
}

// PlanResult is the outcome of one Plan call.
type PlanResult struct {
	Actions        []actionspace.Action
	EstimatedValue float64
	SimulationsRun int
	Root           *TreeNode
}

// MCTSPlanner is the search orchestrator. It is single-threaded and
// synchronous: Plan runs to completion with no suspension points.
type MCTSPlanner struct {
	actionGenerator ActionGenerator
	rewardModel     RewardModel
	priorPolicy     PriorPolicy
	config          MCTSConfig
	logger          *logrus.Logger
}

// NewMCTSPlanner builds a planner. A nil logger defaults to a
// warn-level logrus.Logger, matching the rest of this codebase's
// constructors.
func NewMCTSPlanner(actionGenerator ActionGenerator, rewardModel RewardModel, priorPolicy PriorPolicy, config MCTSConfig, logger *logrus.Logger) *MCTSPlanner {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &MCTSPlanner{
		actionGenerator: actionGenerator,
		rewardModel:     rewardModel,
		priorPolicy:     priorPolicy,
		config:          config,
		logger:          logger,
	}
}

// Plan runs the configured number of simulations against env (borrowed,
// observed and cloned but never applied to) and returns a ranked plan
// prefix.
func (p *MCTSPlanner) Plan(env environment.Environment) PlanResult {
	rootState := env.Observe()
	root := newTreeNode(rootState)

	for i := 0; i < p.config.Simulations; i++ {
		simEnv := env.Clone()
		node := root
		path := []*TreeNode{root}
		depth := 0

		for {
			if simEnv.IsTerminal() || depth >= p.config.RolloutDepth {
				break
			}

			candidates := p.candidateActions(node.State)
			var unexpanded []actionspace.Action
			for _, a := range candidates {
				if _, ok := node.Children[a.Canonical()]; !ok {
					unexpanded = append(unexpanded, a)
				}
			}

			if len(unexpanded) > 0 {
				action := unexpanded[0]
				prior := p.priorPolicy.Score(node.State, action)
				nextState := simEnv.Apply(action)
				child := newTreeNode(nextState)
				child.Parent = node
				child.ActionFromParent = action
				child.HasAction = true
				child.Prior = prior
				node.addChild(action.Canonical(), child)
				node = child
				path = append(path, node)
				depth++
				break
			}

			if len(node.Children) == 0 {
				break
			}

			child := p.selectChild(node)
			if !child.HasAction {
				break
			}
			simEnv.Apply(child.ActionFromParent)
			node = child
			path = append(path, node)
			depth++
		}

		value := p.rollout(simEnv, depth)
		p.backpropagate(path, value)
	}

	actions := p.extractPlan(root)
	p.logger.WithFields(logrus.Fields{
		"simulations":     p.config.Simulations,
		"plan_length":     len(actions),
		"estimated_value": root.QValue(),
	}).Debug("planning: plan() complete")

	return PlanResult{
		Actions:        actions,
		EstimatedValue: root.QValue(),
		SimulationsRun: p.config.Simulations,
		Root:           root,
	}
}

// candidateActions enumerates, prior-ranks (descending), and prunes to
// top_k_actions. This list is the action set at node's state for the life
// of the planning call.
func (p *MCTSPlanner) candidateActions(state dom.State) []actionspace.Action {
	actions := p.actionGenerator.Enumerate(state)

	scores := make(map[string]float64, len(actions))
	for _, a := range actions {
		scores[a.Canonical()] = p.priorPolicy.Score(state, a)
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return scores[actions[i].Canonical()] > scores[actions[j].Canonical()]
	})

	topK := p.config.TopKActions
	if topK < 0 {
		topK = 0
	}
	if len(actions) > topK {
		actions = actions[:topK]
	}
	return actions
}

// selectChild picks the argmax-PUCT child. Ties are broken by child
// insertion order, which is deterministic within a run.
func (p *MCTSPlanner) selectChild(node *TreeNode) *TreeNode {
	if len(node.Children) == 0 {
		panic("planning: cannot select a child from a leaf node")
	}

	parentVisits := node.Visits
	if parentVisits < 1 {
		parentVisits = 1
	}

	var best *TreeNode
	bestScore := math.Inf(-1)
	for _, key := range node.ChildOrder {
		child := node.Children[key]
		exploration := p.config.ExplorationConstant * child.Prior * math.Sqrt(float64(parentVisits)) / (1 + float64(child.Visits))
		score := child.QValue() + exploration
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// rollout runs a greedy, on-policy (by prior rank) continuation from
// simEnv at the given depth, scored by the reward model.
func (p *MCTSPlanner) rollout(simEnv environment.Environment, depth int) float64 {
	total := 0.0
	discount := 1.0
	currentDepth := depth

	for !simEnv.IsTerminal() && currentDepth < p.config.RolloutDepth {
		state := simEnv.Observe()
		candidates := p.candidateActions(state)
		if len(candidates) == 0 {
			break
		}

		action := candidates[0]
		prevState := state
		nextState := simEnv.Apply(action)
		breakdown := p.rewardModel.Evaluate(prevState, action, nextState, simEnv.IsTerminal(), simEnv.IsSuccess())

		total += discount * breakdown.Total
		discount *= p.config.Discount
		currentDepth++
	}

	return total
}

// backpropagate walks path leaf-to-root, crediting each node with a
// running return that is discounted one more step per level toward the
// root.
func (p *MCTSPlanner) backpropagate(path []*TreeNode, value float64) {
	running := value
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		node.Visits++
		node.ValueSum += running
		running *= p.config.Discount
	}
}

// extractPlan descends from root up to rollout_depth steps, at each step
// choosing the child maximizing the lexicographic pair (Visits, QValue).
func (p *MCTSPlanner) extractPlan(root *TreeNode) []actionspace.Action {
	var plan []actionspace.Action
	node := root

	for i := 0; i < p.config.RolloutDepth; i++ {
		if len(node.Children) == 0 {
			break
		}

		var best *TreeNode
		for _, key := range node.ChildOrder {
			child := node.Children[key]
			if best == nil || childBetter(child, best) {
				best = child
			}
		}

		if !best.HasAction {
			break
		}
		plan = append(plan, best.ActionFromParent)
		node = best
	}

	return plan
}

func childBetter(a, b *TreeNode) bool {
	if a.Visits != b.Visits {
		return a.Visits > b.Visits
	}
	return a.QValue() > b.QValue()
}
