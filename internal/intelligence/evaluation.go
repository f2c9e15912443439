package intelligence

import (
	"context"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/NamiSwwaan/crewplan/internal/llm"
)

// EvaluationService asks an employee's persona whether they can take a task.
// It always produces a verdict: transport failures and unparseable replies
// decline with a diagnostic reason instead of erroring, so one bad
// evaluation cannot sink an assignment batch. Satisfies scheduler.Evaluator.
type EvaluationService interface {
	Evaluate(ctx context.Context, employee domain.Employee, task string) (domain.Verdict, error)
}

type evaluationService struct {
	client  llm.Client
	retryer *llm.Retryer
}

// NewEvaluationService creates an EvaluationService backed by an LLM client.
func NewEvaluationService(client llm.Client, retryer *llm.Retryer) EvaluationService {
	return &evaluationService{client: client, retryer: retryer}
}

func (s *evaluationService) Evaluate(ctx context.Context, employee domain.Employee, task string) (domain.Verdict, error) {
	if strings.TrimSpace(task) == "" {
		return domain.Verdict{Reason: "No task description provided."}, nil
	}

	resp, err := s.retryer.Generate(ctx, s.client, 0, llm.GenerateRequest{
		Task:           llm.TaskEvaluate,
		SystemPrompt:   buildEvaluationSystemPrompt(employee.Name, employee.Role, employee.ExpertiseText()),
		UserPrompt:     buildEvaluationPrompt(task),
		ExpectedOutput: "YES/NO with reasoning",
	})
	if err != nil {
		return domain.Verdict{Reason: "Evaluation failed due to error."}, nil
	}

	return parseVerdict(resp.Text), nil
}

// parseVerdict normalizes a free-text YES/NO reply. YES wins over NO when
// both appear. The reason is the text after the first literal token, with a
// stock reason when the token only appears in a different case.
func parseVerdict(raw string) domain.Verdict {
	raw = strings.TrimSpace(raw)
	upper := strings.ToUpper(raw)

	if strings.Contains(upper, "YES") {
		reason := "Task aligns with skills."
		if _, after, found := strings.Cut(raw, "YES"); found {
			reason = strings.Trim(after, ": ")
		}
		return domain.Verdict{Accepted: true, Reason: reason}
	}
	if strings.Contains(upper, "NO") {
		reason := "Task outside expertise."
		if _, after, found := strings.Cut(raw, "NO"); found {
			reason = strings.Trim(after, ": ")
		}
		return domain.Verdict{Reason: reason}
	}
	return domain.Verdict{Reason: "Unable to determine suitability."}
}
