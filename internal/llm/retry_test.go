package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns scripted responses in order, then repeats the last one.
type fakeClient struct {
	errs     []error
	text     string
	attempts int
}

func (f *fakeClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	idx := f.attempts
	f.attempts++
	if idx >= len(f.errs) {
		idx = len(f.errs) - 1
	}
	if err := f.errs[idx]; err != nil {
		return nil, err
	}
	return &GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func (f *fakeClient) Available(ctx context.Context) bool { return true }

func newTestRetryer(maxAttempts int) (*Retryer, *[]time.Duration) {
	var waits []time.Duration
	r := NewRetryer(maxAttempts, 10*time.Millisecond, 80*time.Millisecond)
	r.sleep = func(d time.Duration) { waits = append(waits, d) }
	return r, &waits
}

func TestRetryer_TransientErrorExhaustsAttempts(t *testing.T) {
	client := &fakeClient{errs: []error{ErrRateLimited}}
	r, _ := newTestRetryer(3)

	_, err := r.Generate(context.Background(), client, 0, GenerateRequest{Task: TaskEvaluate})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 3, client.attempts, "should attempt exactly MaxAttempts times")
}

func TestRetryer_PermanentErrorNoRetry(t *testing.T) {
	permanent := errors.New("bad prompt")
	client := &fakeClient{errs: []error{permanent}}
	r, _ := newTestRetryer(5)

	_, err := r.Generate(context.Background(), client, 0, GenerateRequest{})

	assert.ErrorIs(t, err, permanent)
	assert.NotErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 1, client.attempts, "permanent error must not be retried")
}

func TestRetryer_SucceedsAfterTransientFailures(t *testing.T) {
	client := &fakeClient{errs: []error{ErrProviderAPI, ErrProviderAPI, nil}, text: "ok"}
	r, _ := newTestRetryer(5)

	resp, err := r.Generate(context.Background(), client, 0, GenerateRequest{})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, client.attempts)
}

func TestRetryer_BackoffDoublesAndCaps(t *testing.T) {
	client := &fakeClient{errs: []error{ErrRateLimited}}
	r, waits := newTestRetryer(6)

	_, err := r.Generate(context.Background(), client, 0, GenerateRequest{})
	require.Error(t, err)

	// 5 waits between 6 attempts: 10, 20, 40, 80, capped at 80.
	assert.Equal(t, []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
		80 * time.Millisecond,
		80 * time.Millisecond,
	}, *waits)
}

func TestRetryer_PreCallDelayApplied(t *testing.T) {
	client := &fakeClient{errs: []error{nil}, text: "ok"}
	r, waits := newTestRetryer(3)

	_, err := r.Generate(context.Background(), client, 25*time.Millisecond, GenerateRequest{})

	require.NoError(t, err)
	require.Len(t, *waits, 1)
	assert.Equal(t, 25*time.Millisecond, (*waits)[0])
}

func TestRetryer_ContextCancelledStopsRetrying(t *testing.T) {
	client := &fakeClient{errs: []error{ErrRateLimited}}
	r := NewRetryer(10, time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Generate(ctx, client, 0, GenerateRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
