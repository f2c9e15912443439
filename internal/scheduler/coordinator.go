package scheduler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/NamiSwwaan/crewplan/internal/domain"
)

// Evaluator decides whether one employee can take one task.
type Evaluator interface {
	Evaluate(ctx context.Context, employee domain.Employee, task string) (domain.Verdict, error)
}

// AssignmentResult holds the outcome of coordinating one task assignment:
// the accepted subset and one human-readable response line per attempted
// candidate, in descending-score order.
type AssignmentResult struct {
	Assigned  []domain.Employee
	Responses []string
}

// Coordinator runs the assignment decision loop: rank-ordered candidates
// are evaluated one at a time, serialized behind a fixed inter-call delay
// that implements external rate limiting. Evaluations are deliberately not
// parallelized; doing so would break the rate-limit contract.
type Coordinator struct {
	evaluator Evaluator
	delay     time.Duration

	sleep func(time.Duration) // test hook, nil means time.Sleep
}

// NewCoordinator creates a Coordinator. delay is applied before every
// candidate evaluation.
func NewCoordinator(evaluator Evaluator, delay time.Duration) *Coordinator {
	return &Coordinator{evaluator: evaluator, delay: delay}
}

// Assign evaluates the top teamSize candidates by score and returns the
// accepting subset. Team size is by count of attempts, not acceptances:
// lower-ranked candidates are never consulted when higher-ranked ones
// decline. A candidate evaluation failure is recorded as an error line and
// the batch continues.
func (c *Coordinator) Assign(ctx context.Context, task string, employees []domain.Employee, ranked []RankedEmployee, teamSize int) AssignmentResult {
	if isBlank(task) || len(employees) == 0 || teamSize <= 0 {
		return AssignmentResult{Responses: []string{"No assignment possible due to invalid inputs."}}
	}

	// Every employee defaults to 0.0; actual scores overlay on top.
	scores := make(map[string]float64, len(employees))
	for _, emp := range employees {
		scores[emp.Name] = 0.0
	}
	for _, r := range ranked {
		scores[r.Employee.Name] = r.Score
	}

	candidates := make([]domain.Employee, len(employees))
	copy(candidates, employees)
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i].Name] > scores[candidates[j].Name]
	})
	if teamSize < len(candidates) {
		candidates = candidates[:teamSize]
	}

	var result AssignmentResult
	for _, emp := range candidates {
		c.pause()

		verdict, err := c.evaluator.Evaluate(ctx, emp, task)
		if err != nil {
			result.Responses = append(result.Responses, fmt.Sprintf("❌ %s — Error: %v", emp.Name, err))
			continue
		}

		score := scores[emp.Name]
		if verdict.Accepted {
			result.Assigned = append(result.Assigned, emp)
			result.Responses = append(result.Responses,
				fmt.Sprintf("✅ %s accepted — %s (Score: %.2f)", emp.Name, verdict.Reason, score))
		} else {
			result.Responses = append(result.Responses,
				fmt.Sprintf("❌ %s declined — %s (Score: %.2f)", emp.Name, verdict.Reason, score))
		}
	}

	if len(result.Assigned) == 0 {
		result.Responses = append(result.Responses, "⚠️ No suitable employees found.")
	}
	return result
}

func (c *Coordinator) pause() {
	if c.delay <= 0 {
		return
	}
	if c.sleep != nil {
		c.sleep(c.delay)
		return
	}
	time.Sleep(c.delay)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
