package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	orig := Snapshot{
		Step: StepTaskAssignment,
		Document: &ProjectDocument{
			TechnicalSpec: "spec v1",
			Tasks:         []PlannedTask{{Description: "Build API", Priority: PriorityHigh}},
			Dependencies:  []string{"payment gateway"},
			Skills:        []string{"go"},
			Resources:     Resources{Tech: []string{"server"}},
		},
		TaskBoard: []BoardEntry{{
			Task:      "Build API",
			Employees: []string{"Alice"},
			Emails:    []string{"alice@example.com"},
		}},
		SubTasks: map[string][]SubTask{
			"Build API": {{Description: "Design schema", Help: "start here"}},
		},
		CEOInput: "vendor dashboard",
		Approval: true,
	}

	clone := orig.Clone()

	// Mutate the clone everywhere a shared reference could hide.
	clone.Document.TechnicalSpec = "spec v2"
	clone.Document.Tasks[0].Description = "changed"
	clone.Document.Dependencies[0] = "changed"
	clone.Document.Resources.Tech[0] = "changed"
	clone.TaskBoard[0].Employees[0] = "Bob"
	clone.SubTasks["Build API"][0].Assigned = "Bob"

	assert.Equal(t, "spec v1", orig.Document.TechnicalSpec)
	assert.Equal(t, "Build API", orig.Document.Tasks[0].Description)
	assert.Equal(t, "payment gateway", orig.Document.Dependencies[0])
	assert.Equal(t, "server", orig.Document.Resources.Tech[0])
	assert.Equal(t, "Alice", orig.TaskBoard[0].Employees[0])
	assert.Empty(t, orig.SubTasks["Build API"][0].Assigned)
}

func TestSnapshot_CloneNilDocument(t *testing.T) {
	clone := Snapshot{Step: StepCEOInput}.Clone()
	require.Nil(t, clone.Document)
}

func TestPlannedTask_WireShape(t *testing.T) {
	raw, err := json.Marshal(PlannedTask{Description: "Build API", Priority: PriorityHigh})
	require.NoError(t, err)
	assert.JSONEq(t, `{"task": "Build API", "priority": "High"}`, string(raw))
}

func TestEmployee_ExpertiseText(t *testing.T) {
	withSkills := Employee{Name: "A", Skills: []string{"go", "sql"}, MyWork: "backend services"}
	assert.Equal(t, "go sql", withSkills.ExpertiseText())

	withoutSkills := Employee{Name: "B", MyWork: "backend services"}
	assert.Equal(t, "backend services", withoutSkills.ExpertiseText())

	empty := Employee{Name: "C"}
	assert.Empty(t, empty.ExpertiseText())
}

func TestStep_NameAndValid(t *testing.T) {
	assert.Equal(t, "CEO Input", StepCEOInput.Name())
	assert.Equal(t, "Project Report", StepProjectReport.Name())
	assert.Equal(t, "Unknown", Step(9).Name())

	assert.True(t, StepSubTasks.Valid())
	assert.False(t, Step(0).Valid())
	assert.False(t, Step(7).Valid())
}
