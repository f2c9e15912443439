package domain

import "strings"

// Employee is one roster entry. Loaded once per process from the employee
// store and never mutated by the planning core.
type Employee struct {
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Email  string   `json:"email"`
	Skills []string `json:"skills,omitempty"`
	MyWork string   `json:"my_work,omitempty"`
}

// ExpertiseText returns the text used for similarity ranking: the joined
// skills list when present, otherwise the free-text work description.
func (e Employee) ExpertiseText() string {
	if len(e.Skills) > 0 {
		return strings.Join(e.Skills, " ")
	}
	return e.MyWork
}

// Verdict is the outcome of evaluating one employee against one task.
type Verdict struct {
	Accepted bool
	Reason   string
}
