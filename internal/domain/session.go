package domain

// SubTask is one generated step under a planned task. Assigned stays empty
// until the distributor binds it to a team member.
type SubTask struct {
	Description string `json:"sub_task"`
	Help        string `json:"help"`
	Assigned    string `json:"assigned,omitempty"`
}

// BoardEntry binds one task to its team: the assignment record shown on the
// task board.
type BoardEntry struct {
	Task          string   `json:"task"`
	Employees     []string `json:"employees"`
	Emails        []string `json:"emails"`
	Deadline      string   `json:"deadline"` // YYYY-MM-DD
	DurationHours float64  `json:"duration"`
	DaysNeeded    int      `json:"days_needed"`
	Priority      Priority `json:"priority"`
}

// Clone returns a deep copy.
func (b BoardEntry) Clone() BoardEntry {
	out := b
	out.Employees = cloneStrings(b.Employees)
	out.Emails = cloneStrings(b.Emails)
	return out
}

// Snapshot is a point-in-time deep copy of the editable session state,
// stored on the undo/redo history stack. Later mutation of live state must
// never alter a stored snapshot.
type Snapshot struct {
	Step      Step                 `json:"current_step"`
	Document  *ProjectDocument     `json:"output"`
	TaskBoard []BoardEntry         `json:"task_board"`
	SubTasks  map[string][]SubTask `json:"sub_tasks"`
	CEOInput  string               `json:"ceo_input"`
	Approval  bool                 `json:"scrum_master_approval"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Step:      s.Step,
		Document:  s.Document.Clone(),
		TaskBoard: CloneBoard(s.TaskBoard),
		SubTasks:  CloneSubTasks(s.SubTasks),
		CEOInput:  s.CEOInput,
		Approval:  s.Approval,
	}
}

// CloneBoard deep-copies a task board.
func CloneBoard(in []BoardEntry) []BoardEntry {
	if in == nil {
		return nil
	}
	out := make([]BoardEntry, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}

// CloneSubTasks deep-copies a task -> sub-task map.
func CloneSubTasks(in map[string][]SubTask) map[string][]SubTask {
	if in == nil {
		return nil
	}
	out := make(map[string][]SubTask, len(in))
	for task, subs := range in {
		copied := make([]SubTask, len(subs))
		copy(copied, subs)
		out[task] = copied
	}
	return out
}
