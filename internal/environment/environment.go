// Package environment defines the capability contract the MCTS planner
// requires of any browser-like environment, plus a deterministic mock
// form environment used as the reference binding for tests.
package environment

import (
	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
)

// Environment is the single capability the planner consumes. All methods
// are synchronous and return immediately; there are no suspension points.
type Environment interface {
	// Observe snapshots the current state. Idempotent.
	Observe() dom.State
	// Apply advances one step and returns the post-state. If the
	// environment is already terminal, Apply must be a no-op returning the
	// current observation.
	Apply(action actionspace.Action) dom.State
	// Clone returns a deep, independent copy. Applying an action to the
	// clone must have no effect on the original.
	Clone() Environment
	IsTerminal() bool
	IsSuccess() bool
}
