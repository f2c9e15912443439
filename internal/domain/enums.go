package domain

// Priority labels a planned task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true,
}

// Step identifies one wizard step, 1-based.
type Step int

const (
	StepCEOInput Step = iota + 1
	StepTechnicalSpec
	StepTaskPlanning
	StepTaskAssignment
	StepSubTasks
	StepProjectReport
)

// LastStep is the final wizard step.
const LastStep = StepProjectReport

var stepNames = map[Step]string{
	StepCEOInput:       "CEO Input",
	StepTechnicalSpec:  "Technical Spec",
	StepTaskPlanning:   "Task Planning",
	StepTaskAssignment: "Task Assignment",
	StepSubTasks:       "Sub-tasks",
	StepProjectReport:  "Project Report",
}

// Name returns the display name for a step, or "Unknown" out of range.
func (s Step) Name() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether s is within the wizard range.
func (s Step) Valid() bool {
	return s >= StepCEOInput && s <= LastStep
}
