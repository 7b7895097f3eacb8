// Package trace provides a minimal in-memory recorder for replaying a
// planning episode: the plan produced at each re-planning call, and each
// action actually executed against the environment.
package trace

import (
	"github.com/google/uuid"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
)

// Event is a single executed-action record.
type Event struct {
	ID      string
	Step    int
	Action  string
	URL     string
	Success bool
}

// Recorder accumulates plans and executed-action events for one episode.
type Recorder struct {
	Events []Event
	Plans  [][]string
}

// NewRecorder builds an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordPlan appends the canonical forms of a plan() call's action list.
func (r *Recorder) RecordPlan(actions []actionspace.Action) {
	canonical := make([]string, len(actions))
	for i, a := range actions {
		canonical[i] = a.Canonical()
	}
	r.Plans = append(r.Plans, canonical)
}

// RecordAction appends a single executed-action transition.
func (r *Recorder) RecordAction(prev dom.State, action actionspace.Action, next dom.State) {
	r.Events = append(r.Events, Event{
		ID:      uuid.NewString(),
		Step:    next.Step,
		Action:  action.Canonical(),
		URL:     prev.URL,
		Success: next.Metadata["success"] == "true",
	})
}
