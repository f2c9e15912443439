// Package workflow holds the session state machine: the six-step wizard
// position, the editable planning state, and the undo/redo history.
package workflow

import "github.com/NamiSwwaan/crewplan/internal/domain"

// State is the complete persisted session record. Editable fields mirror
// domain.Snapshot; History and AssignmentResponses ride alongside but are
// not themselves snapshotted.
type State struct {
	Step                domain.Step                 `json:"current_step"`
	Document            *domain.ProjectDocument     `json:"output"`
	TaskBoard           []domain.BoardEntry         `json:"task_board"`
	SubTasks            map[string][]domain.SubTask `json:"sub_tasks"`
	CEOInput            string                      `json:"ceo_input"`
	Approval            bool                        `json:"scrum_master_approval"`
	History             []domain.Snapshot           `json:"history"`
	HistoryIndex        int                         `json:"history_index"`
	AssignmentResponses map[string][]string         `json:"assignment_responses"`
}

// NewState returns a fresh session at step one with the initial snapshot
// already on the history stack.
func NewState() *State {
	s := &State{
		Step:                domain.StepCEOInput,
		SubTasks:            map[string][]domain.SubTask{},
		HistoryIndex:        -1,
		AssignmentResponses: map[string][]string{},
	}
	s.push()
	return s
}

// Commit applies a mutation and records the resulting state on the history
// stack. Every edit to the session goes through here; pushing after the
// mutation means undo lands on the state just before it.
func (s *State) Commit(mutate func(*State)) {
	mutate(s)
	s.push()
}

// Advance moves to the next step, clamped at the last one.
func (s *State) Advance() {
	s.Commit(func(st *State) {
		if st.Step < domain.LastStep {
			st.Step++
		}
	})
}

// Retreat moves to the previous step. At step one it is a no-op and records
// nothing.
func (s *State) Retreat() {
	if s.Step <= domain.StepCEOInput {
		return
	}
	s.Commit(func(st *State) {
		st.Step--
	})
}

// JumpTo moves directly to a step. Out-of-range steps are ignored.
func (s *State) JumpTo(step domain.Step) {
	if !step.Valid() {
		return
	}
	s.Commit(func(st *State) {
		st.Step = step
	})
}

// CanUndo reports whether an earlier snapshot exists.
func (s *State) CanUndo() bool {
	return s.HistoryIndex > 0
}

// CanRedo reports whether a later snapshot exists.
func (s *State) CanRedo() bool {
	return s.HistoryIndex < len(s.History)-1
}

// Undo restores the previous snapshot. No-op at the start of history.
func (s *State) Undo() {
	if !s.CanUndo() {
		return
	}
	s.HistoryIndex--
	s.restore()
}

// Redo restores the next snapshot. No-op at the end of history.
func (s *State) Redo() {
	if !s.CanRedo() {
		return
	}
	s.HistoryIndex++
	s.restore()
}

// push records a deep snapshot of the editable state. When the cursor sits
// mid-history, the discarded future entries are truncated first, so a new
// edit after undo starts a fresh branch.
func (s *State) push() {
	if s.HistoryIndex < len(s.History)-1 {
		s.History = s.History[:s.HistoryIndex+1]
	}
	s.History = append(s.History, s.snapshot().Clone())
	s.HistoryIndex++
}

func (s *State) snapshot() domain.Snapshot {
	return domain.Snapshot{
		Step:      s.Step,
		Document:  s.Document,
		TaskBoard: s.TaskBoard,
		SubTasks:  s.SubTasks,
		CEOInput:  s.CEOInput,
		Approval:  s.Approval,
	}
}

// restore copies the snapshot at the cursor back into the editable state.
// The stored snapshot is cloned so later edits cannot reach into history.
func (s *State) restore() {
	if s.HistoryIndex < 0 || s.HistoryIndex >= len(s.History) {
		return
	}
	snap := s.History[s.HistoryIndex].Clone()
	s.Step = snap.Step
	s.Document = snap.Document
	s.TaskBoard = snap.TaskBoard
	s.SubTasks = snap.SubTasks
	s.CEOInput = snap.CEOInput
	s.Approval = snap.Approval
}
