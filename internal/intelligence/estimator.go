package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/NamiSwwaan/crewplan/internal/estimate"
	"github.com/NamiSwwaan/crewplan/internal/llm"
)

// Estimate is a task effort estimate with its breakdown.
type Estimate struct {
	DurationHours float64
	SubTasks      []domain.SubTask
}

// EstimatorService estimates effort for a task and breaks it into sub-tasks.
// Estimation never fails: any LLM or parsing problem degrades to a keyword
// heuristic with a single default sub-task.
type EstimatorService interface {
	Estimate(ctx context.Context, task string) Estimate
}

type estimatorService struct {
	client  llm.Client
	retryer *llm.Retryer
}

// NewEstimatorService creates an EstimatorService backed by an LLM client.
func NewEstimatorService(client llm.Client, retryer *llm.Retryer) EstimatorService {
	return &estimatorService{client: client, retryer: retryer}
}

func (s *estimatorService) Estimate(ctx context.Context, task string) Estimate {
	if strings.TrimSpace(task) == "" {
		return Estimate{
			DurationHours: 10.0,
			SubTasks:      []domain.SubTask{{Description: "Default task", Help: "No description provided."}},
		}
	}

	resp, err := s.retryer.Generate(ctx, s.client, 0, llm.GenerateRequest{
		Task:           llm.TaskEstimate,
		SystemPrompt:   estimatorSystemPrompt,
		UserPrompt:     buildEstimatorPrompt(task),
		ExpectedOutput: "JSON with duration and sub_tasks",
	})
	if err != nil {
		return fallbackEstimate(task)
	}

	payload, err := llm.ExtractJSON[estimatorResponse](resp.Text, validateEstimatorResponse)
	if err != nil {
		return fallbackEstimate(task)
	}

	var durationValue any
	if err := json.Unmarshal(payload.Duration, &durationValue); err != nil {
		return fallbackEstimate(task)
	}
	hours, err := estimate.ParseDuration(durationValue)
	if err != nil {
		return fallbackEstimate(task)
	}

	var subTasks []domain.SubTask
	if err := json.Unmarshal(payload.SubTasks, &subTasks); err != nil || len(subTasks) == 0 {
		subTasks = []domain.SubTask{{
			Description: fmt.Sprintf("Sub-task 1 for %s", task),
			Help:        "Basic step",
		}}
	}

	return Estimate{DurationHours: hours, SubTasks: subTasks}
}

// estimatorResponse captures the raw JSON fields before lenient decoding:
// duration may be a number, a numeric string, or a range.
type estimatorResponse struct {
	Duration json.RawMessage `json:"duration"`
	SubTasks json.RawMessage `json:"sub_tasks"`
}

// validateEstimatorResponse requires both fields present.
func validateEstimatorResponse(resp estimatorResponse) error {
	if resp.Duration == nil || resp.SubTasks == nil {
		return errors.New("missing duration or sub_tasks")
	}
	return nil
}

// fallbackEstimate applies the keyword duration heuristic with one default
// sub-task.
func fallbackEstimate(task string) Estimate {
	lower := strings.ToLower(task)
	var hours float64
	switch {
	case strings.Contains(lower, "api"):
		hours = 30.0
	case strings.Contains(lower, "ui"):
		hours = 15.0
	case strings.Contains(lower, "database"):
		hours = 12.0
	default:
		hours = 10.0
	}
	return Estimate{
		DurationHours: hours,
		SubTasks: []domain.SubTask{{
			Description: fmt.Sprintf("Sub-task 1 for %s", task),
			Help:        "Default step",
		}},
	}
}
