package environment

import (
	"strings"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
)

// requiredFields are the form's input nodes that must be non-empty for
// submission to succeed.
var requiredFields = []string{"n_name", "n_email"}

// MockBrowserEnv is the deterministic reference browser binding: a simple
// two-field form with a submit button and a destructive cancel button. It
// is the environment the spec.md scenarios S1-S6 are written against.
type MockBrowserEnv struct {
	Task        dom.TaskSpec
	MaxSteps    int
	step        int
	success     bool
	failed      bool
	submitted   bool
	fieldValues map[string]string
	history     []string
}

// NewMockBrowserEnv builds a fresh form environment with the given step
// budget (default 8 when maxSteps <= 0).
func NewMockBrowserEnv(maxSteps int) *MockBrowserEnv {
	if maxSteps <= 0 {
		maxSteps = 8
	}
	return &MockBrowserEnv{
		Task:     dom.DefaultTaskSpec(),
		MaxSteps: maxSteps,
		fieldValues: map[string]string{
			"n_name":  "",
			"n_email": "",
		},
	}
}

// Clone returns a deep, independent copy of the environment.
func (e *MockBrowserEnv) Clone() Environment {
	fieldValues := make(map[string]string, len(e.fieldValues))
	for k, v := range e.fieldValues {
		fieldValues[k] = v
	}
	history := make([]string, len(e.history))
	copy(history, e.history)

	return &MockBrowserEnv{
		Task:        e.Task,
		MaxSteps:    e.MaxSteps,
		step:        e.step,
		success:     e.success,
		failed:      e.failed,
		submitted:   e.submitted,
		fieldValues: fieldValues,
		history:     history,
	}
}

func (e *MockBrowserEnv) allRequiredFilled() bool {
	for _, id := range requiredFields {
		if strings.TrimSpace(e.fieldValues[id]) == "" {
			return false
		}
	}
	return true
}

// Observe snapshots the current form state.
func (e *MockBrowserEnv) Observe() dom.State {
	statusText := "pending"
	if e.success {
		statusText = "success"
	} else if e.failed {
		statusText = "failed"
	}

	nodes := map[string]dom.Node{
		"n_form": {
			NodeID:   "n_form",
			Tag:      "form",
			Visible:  true,
			Children: []string{"n_name", "n_email", "n_submit", "n_cancel"},
		},
		"n_name": {
			NodeID:       "n_name",
			Tag:          "input",
			Visible:      true,
			Interactable: true,
			Text:         e.fieldValues["n_name"],
			Attributes:   map[string]string{"placeholder": "name", "required": "true"},
		},
		"n_email": {
			NodeID:       "n_email",
			Tag:          "input",
			Visible:      true,
			Interactable: true,
			Text:         e.fieldValues["n_email"],
			Attributes:   map[string]string{"placeholder": "email", "required": "true"},
		},
		"n_submit": {
			NodeID:       "n_submit",
			Tag:          "button",
			Text:         "submit",
			Visible:      true,
			Interactable: true,
			Attributes:   map[string]string{"id": "submit"},
		},
		"n_cancel": {
			NodeID:       "n_cancel",
			Tag:          "button",
			Text:         "cancel",
			Visible:      true,
			Interactable: true,
			Attributes:   map[string]string{"destructive": "true"},
		},
		"n_status": {
			NodeID:  "n_status",
			Tag:     "div",
			Text:    statusText,
			Visible: true,
		},
	}

	filled := func(id string) string {
		if strings.TrimSpace(e.fieldValues[id]) != "" {
			return "true"
		}
		return "false"
	}

	metadata := map[string]string{
		"all_required_filled": boolStr(e.allRequiredFilled()),
		"submitted":           boolStr(e.submitted),
		"success":             boolStr(e.success),
		"scrollable":          "true",
		"filled:n_name":       filled("n_name"),
		"filled:n_email":      filled("n_email"),
	}

	history := make([]string, len(e.history))
	copy(history, e.history)

	return dom.State{
		URL:                "https://mock.local/form",
		Nodes:              nodes,
		InteractionHistory: history,
		Metadata:           metadata,
		Step:               e.step,
	}
}

// Apply advances the form by one action. A no-op once terminal.
func (e *MockBrowserEnv) Apply(action actionspace.Action) dom.State {
	if e.IsTerminal() {
		return e.Observe()
	}

	e.step++
	e.history = append(e.history, action.Canonical())

	if action.ActionType == actionspace.Type && action.HasNodeID {
		if _, ok := e.fieldValues[action.NodeID]; ok {
			e.fieldValues[action.NodeID] = strings.TrimSpace(action.Value)
		}
	}

	if action.ActionType == actionspace.Click && action.HasNodeID {
		switch action.NodeID {
		case "n_submit":
			e.submitted = true
			if e.allRequiredFilled() {
				e.success = true
			} else {
				e.failed = true
			}
		case "n_cancel":
			e.failed = true
		}
	}

	if e.step >= e.MaxSteps && !e.success {
		e.failed = true
	}

	return e.Observe()
}

// IsTerminal reports whether the episode has reached success or failure.
func (e *MockBrowserEnv) IsTerminal() bool {
	return e.success || e.failed
}

// IsSuccess reports whether the episode ended successfully.
func (e *MockBrowserEnv) IsSuccess() bool {
	return e.success
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
