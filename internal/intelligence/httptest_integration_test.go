package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NamiSwwaan/crewplan/internal/domain"
	"github.com/NamiSwwaan/crewplan/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOllamaServer(t *testing.T, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": response,
		})
	}))
}

// Exercises the full HTTP serialization path: httptest server → ollama
// client → retryer → analyst parsing. Guards against mock-drift between the
// Ollama response format and the parsing layer.
func TestAnalyst_WithHTTPTestServer(t *testing.T) {
	plan := `{
		"technical_spec": "A booking API with calendar sync.",
		"tasks": [{"task": "Build booking endpoints", "priority": "High"}],
		"dependencies": ["calendar provider"],
		"skills": ["go"],
		"resources": {"tech": ["one engineer"], "legal": [], "finance": [], "marketing": []}
	}`
	srv := newOllamaServer(t, plan)
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"

	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})
	svc := NewAnalystService(client, testRetryer())

	doc, err := svc.Analyze(context.Background(), "booking platform")
	require.NoError(t, err)
	assert.Equal(t, "A booking API with calendar sync.", doc.TechnicalSpec)
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, domain.PriorityHigh, doc.Tasks[0].Priority)
}

func TestEstimator_WithHTTPTestServer(t *testing.T) {
	srv := newOllamaServer(t, `{"duration": "10-20 hrs", "sub_tasks": [{"sub_task": "wireframes", "help": "desktop first"}]}`)
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"

	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "design the dashboard")
	assert.Equal(t, 15.0, est.DurationHours)
	require.Len(t, est.SubTasks, 1)
	assert.Equal(t, "wireframes", est.SubTasks[0].Description)
}

func TestEvaluation_WithHTTPTestServer(t *testing.T) {
	srv := newOllamaServer(t, "YES: dashboards are my specialty.")
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"

	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})
	svc := NewEvaluationService(client, testRetryer())

	verdict, err := svc.Evaluate(context.Background(), testEmployee(), "design the dashboard")
	require.NoError(t, err)
	assert.True(t, verdict.Accepted)
	assert.Equal(t, "dashboards are my specialty.", verdict.Reason)
}

// A provider error surfaced over real HTTP must decline, not error, so one
// broken evaluation cannot sink an assignment batch.
func TestEvaluation_ServerErrorDeclines_WithHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"

	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})
	svc := NewEvaluationService(client, testRetryer())

	verdict, err := svc.Evaluate(context.Background(), testEmployee(), "design the dashboard")
	require.NoError(t, err)
	assert.False(t, verdict.Accepted)
	assert.Equal(t, "Evaluation failed due to error.", verdict.Reason)
}
