package workflow

import (
	"testing"

	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_StartsWithInitialSnapshot(t *testing.T) {
	s := NewState()

	assert.Equal(t, domain.StepCEOInput, s.Step)
	require.Len(t, s.History, 1)
	assert.Equal(t, 0, s.HistoryIndex)
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}

func TestCommit_PushesSnapshotAfterMutation(t *testing.T) {
	s := NewState()

	s.Commit(func(st *State) { st.CEOInput = "build a marketplace" })

	require.Len(t, s.History, 2)
	assert.Equal(t, "build a marketplace", s.History[1].CEOInput)
	assert.Equal(t, "", s.History[0].CEOInput)
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	s := NewState()
	s.Commit(func(st *State) { st.CEOInput = "first" })
	s.Commit(func(st *State) { st.CEOInput = "second" })

	s.Undo()
	assert.Equal(t, "first", s.CEOInput)
	s.Undo()
	assert.Equal(t, "", s.CEOInput)
	assert.False(t, s.CanUndo())

	s.Redo()
	assert.Equal(t, "first", s.CEOInput)
	s.Redo()
	assert.Equal(t, "second", s.CEOInput)
	assert.False(t, s.CanRedo())
}

func TestCommitAfterUndo_DiscardsFuture(t *testing.T) {
	s := NewState()
	s.Commit(func(st *State) { st.CEOInput = "first" })
	s.Commit(func(st *State) { st.CEOInput = "second" })

	s.Undo()
	s.Commit(func(st *State) { st.CEOInput = "branched" })

	assert.Equal(t, "branched", s.CEOInput)
	assert.False(t, s.CanRedo(), "the undone future must be unreachable")
	require.Len(t, s.History, 3)
	assert.Equal(t, "branched", s.History[2].CEOInput)

	// Redo is a no-op at the end of history.
	s.Redo()
	assert.Equal(t, "branched", s.CEOInput)
}

func TestUndo_DoesNotShareMemoryWithHistory(t *testing.T) {
	s := NewState()
	s.Commit(func(st *State) {
		st.Document = &domain.ProjectDocument{
			TechnicalSpec: "spec",
			Tasks:         []domain.PlannedTask{{Description: "build api", Priority: domain.PriorityHigh}},
		}
	})
	s.Commit(func(st *State) { st.Step = domain.StepTechnicalSpec })

	s.Undo()
	s.Document.Tasks[0].Description = "mutated live copy"

	s.Redo()
	s.Undo()
	assert.Equal(t, "build api", s.Document.Tasks[0].Description,
		"restoring must hand out clones, not history internals")
}

func TestAdvance_ClampsAtLastStep(t *testing.T) {
	s := NewState()
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	assert.Equal(t, domain.LastStep, s.Step)
}

func TestRetreat_NoOpAtFirstStep(t *testing.T) {
	s := NewState()
	before := len(s.History)

	s.Retreat()

	assert.Equal(t, domain.StepCEOInput, s.Step)
	assert.Len(t, s.History, before, "a rejected retreat records nothing")
}

func TestJumpTo(t *testing.T) {
	s := NewState()

	s.JumpTo(domain.StepSubTasks)
	assert.Equal(t, domain.StepSubTasks, s.Step)

	before := len(s.History)
	s.JumpTo(domain.Step(99))
	assert.Equal(t, domain.StepSubTasks, s.Step)
	assert.Len(t, s.History, before)
}

func TestUndo_RestoresStepAndBoardTogether(t *testing.T) {
	s := NewState()
	s.Commit(func(st *State) {
		st.TaskBoard = []domain.BoardEntry{{Task: "build api", Employees: []string{"Alice"}}}
		st.SubTasks["build api"] = []domain.SubTask{{Description: "design schema"}}
	})
	s.Advance()

	s.Undo()
	assert.Equal(t, domain.StepCEOInput, s.Step)
	require.Len(t, s.TaskBoard, 1)

	s.Undo()
	assert.Empty(t, s.TaskBoard)
	assert.Empty(t, s.SubTasks)
}
