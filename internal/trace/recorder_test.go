package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-labs/domplanner/internal/actionspace"
	"github.com/kestrel-labs/domplanner/internal/dom"
)

func TestRecordPlan_StoresCanonicalForms(t *testing.T) {
	r := NewRecorder()
	r.RecordPlan([]actionspace.Action{
		actionspace.NewType("n_name", "name_text"),
		actionspace.NewClick("n_submit", false),
	})

	assert.Equal(t, [][]string{{"type:n_name:name_text:", "click:n_submit:_:"}}, r.Plans)
}

func TestRecordAction_CapturesTransition(t *testing.T) {
	r := NewRecorder()
	prev := dom.State{URL: "https://mock.local/form"}
	next := dom.State{Step: 1, Metadata: map[string]string{"success": "true"}}
	action := actionspace.NewClick("n_submit", false)

	r.RecordAction(prev, action, next)

	require := assert.New(t)
	require.Len(r.Events, 1)
	require.Equal(1, r.Events[0].Step)
	require.Equal("click:n_submit:_:", r.Events[0].Action)
	require.Equal("https://mock.local/form", r.Events[0].URL)
	require.True(r.Events[0].Success)
	require.NotEmpty(r.Events[0].ID)
}
