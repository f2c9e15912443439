package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/NamiSwwaan/crewplan/internal/llm"
)

// ErrEmptyRequirement indicates a blank requirement was given to the analyst.
var ErrEmptyRequirement = errors.New("requirement cannot be empty")

// AnalystService turns a raw product requirement into a structured project
// document. Output problems never surface to the caller: incomplete or
// unparseable LLM output degrades to a minimal valid document built from the
// requirement itself. Only transport failures (after retries) are errors.
type AnalystService interface {
	Analyze(ctx context.Context, requirement string) (*domain.ProjectDocument, error)
}

type analystService struct {
	client  llm.Client
	retryer *llm.Retryer
}

// NewAnalystService creates an AnalystService backed by an LLM client.
func NewAnalystService(client llm.Client, retryer *llm.Retryer) AnalystService {
	return &analystService{client: client, retryer: retryer}
}

func (s *analystService) Analyze(ctx context.Context, requirement string) (*domain.ProjectDocument, error) {
	if strings.TrimSpace(requirement) == "" {
		return nil, ErrEmptyRequirement
	}

	resp, err := s.retryer.Generate(ctx, s.client, 0, llm.GenerateRequest{
		Task:           llm.TaskAnalyze,
		SystemPrompt:   analystSystemPrompt,
		UserPrompt:     buildAnalystPrompt(requirement),
		ExpectedOutput: "A valid JSON object",
	})
	if err != nil {
		return nil, fmt.Errorf("llm analysis failed: %w", err)
	}

	doc, ok := parseProjectDocument(resp.Text)
	if !ok {
		return fallbackDocument(requirement), nil
	}
	return doc, nil
}

// analystResponse captures the raw JSON fields before lenient decoding.
// RawMessage keeps presence checks separate from shape tolerance.
type analystResponse struct {
	TechnicalSpec json.RawMessage `json:"technical_spec"`
	Tasks         json.RawMessage `json:"tasks"`
	Dependencies  json.RawMessage `json:"dependencies"`
	Skills        json.RawMessage `json:"skills"`
	Resources     json.RawMessage `json:"resources"`
}

// validateAnalystResponse requires all five top-level fields present.
func validateAnalystResponse(resp analystResponse) error {
	if resp.TechnicalSpec == nil || resp.Tasks == nil || resp.Dependencies == nil ||
		resp.Skills == nil || resp.Resources == nil {
		return errors.New("missing required field")
	}
	return nil
}

// parseProjectDocument extracts and decodes a project document from raw LLM
// text. The decoder tolerates two common model deviations: technical_spec
// arriving as a nested object and task entries arriving as bare strings.
func parseProjectDocument(raw string) (*domain.ProjectDocument, bool) {
	resp, err := llm.ExtractJSON[analystResponse](raw, validateAnalystResponse)
	if err != nil {
		return nil, false
	}

	spec, ok := decodeSpec(resp.TechnicalSpec)
	if !ok {
		return nil, false
	}
	tasks, ok := decodeTasks(resp.Tasks)
	if !ok {
		return nil, false
	}

	return &domain.ProjectDocument{
		TechnicalSpec: spec,
		Tasks:         tasks,
		Dependencies:  decodeStrings(resp.Dependencies),
		Skills:        decodeStrings(resp.Skills),
		Resources:     decodeResources(resp.Resources),
	}, true
}

// decodeSpec accepts a plain string or an object carrying the overview under
// a well-known key.
func decodeSpec(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	for _, key := range []string{"overview", "summary", "description"} {
		if inner, ok := obj[key]; ok {
			if err := json.Unmarshal(inner, &s); err == nil {
				return s, true
			}
		}
	}
	return "", false
}

// decodeTasks accepts entries that are bare strings or objects with a "task"
// field and optional priority. Bare strings and unknown priorities default
// to Medium.
func decodeTasks(raw json.RawMessage) ([]domain.PlannedTask, bool) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}

	tasks := make([]domain.PlannedTask, 0, len(entries))
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			if strings.TrimSpace(s) == "" {
				continue
			}
			tasks = append(tasks, domain.PlannedTask{Description: s, Priority: domain.PriorityMedium})
			continue
		}

		var obj struct {
			Task        string          `json:"task"`
			Description string          `json:"description"`
			Priority    domain.Priority `json:"priority"`
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, false
		}
		desc := obj.Task
		if desc == "" {
			desc = obj.Description
		}
		if strings.TrimSpace(desc) == "" {
			continue
		}
		priority := obj.Priority
		if !domain.ValidPriorities[priority] {
			priority = domain.PriorityMedium
		}
		tasks = append(tasks, domain.PlannedTask{Description: desc, Priority: priority})
	}
	return tasks, true
}

// decodeStrings accepts a list of strings or a single string, dropping
// anything else.
func decodeStrings(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return []string{s}
	}
	return nil
}

func decodeResources(raw json.RawMessage) domain.Resources {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return domain.Resources{}
	}
	return domain.Resources{
		Tech:      decodeStrings(obj["tech"]),
		Legal:     decodeStrings(obj["legal"]),
		Finance:   decodeStrings(obj["finance"]),
		Marketing: decodeStrings(obj["marketing"]),
	}
}

// fallbackDocument builds the minimal valid plan used when the LLM output is
// unusable.
func fallbackDocument(requirement string) *domain.ProjectDocument {
	return &domain.ProjectDocument{
		TechnicalSpec: fmt.Sprintf("Basic implementation for %s", requirement),
		Tasks: []domain.PlannedTask{
			{Description: fmt.Sprintf("Implement %s", requirement), Priority: domain.PriorityMedium},
		},
	}
}
