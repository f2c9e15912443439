package testutil

import (
	"context"
	"sync"

	"github.com/NamiSwwaan/crewplan/internal/llm"
)

// FakeLLM is a scripted llm.Client. Responses are keyed by task type so one
// fake can serve the analyst, estimator, and evaluator in a single test.
type FakeLLM struct {
	mu        sync.Mutex
	Responses map[llm.TaskType]string
	Errs      map[llm.TaskType]error
	Requests  []llm.GenerateRequest
}

// NewFakeLLM creates an empty FakeLLM; script it via Responses and Errs.
func NewFakeLLM() *FakeLLM {
	return &FakeLLM{
		Responses: map[llm.TaskType]string{},
		Errs:      map[llm.TaskType]error{},
	}
}

func (f *FakeLLM) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	if err, ok := f.Errs[req.Task]; ok {
		return nil, err
	}
	return &llm.GenerateResponse{Text: f.Responses[req.Task], Model: "fake-model"}, nil
}

func (f *FakeLLM) Available(ctx context.Context) bool { return true }

// CallCount returns how many Generate calls were made for a task type.
func (f *FakeLLM) CallCount(task llm.TaskType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, req := range f.Requests {
		if req.Task == task {
			n++
		}
	}
	return n
}
