package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimator_ParsesDurationAndSubTasks(t *testing.T) {
	client := &fakeClient{text: `{
		"duration": 24,
		"sub_tasks": [
			{"sub_task": "Design schema", "help": "Start from the ER diagram"},
			{"sub_task": "Write migrations", "help": "One file per table"}
		]
	}`}
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "build the database layer")

	assert.Equal(t, 24.0, est.DurationHours)
	require.Len(t, est.SubTasks, 2)
	assert.Equal(t, "Design schema", est.SubTasks[0].Description)
	assert.Equal(t, "One file per table", est.SubTasks[1].Help)
}

func TestEstimator_RangeDurationUsesMidpoint(t *testing.T) {
	client := &fakeClient{text: `{"duration": "20-40 hours", "sub_tasks": [{"sub_task": "x", "help": "y"}]}`}
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "build something")
	assert.Equal(t, 30.0, est.DurationHours)
}

func TestEstimator_EmptyTaskShortCircuits(t *testing.T) {
	client := &fakeClient{}
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "  ")

	assert.Equal(t, 10.0, est.DurationHours)
	require.Len(t, est.SubTasks, 1)
	assert.Equal(t, "Default task", est.SubTasks[0].Description)
	assert.Equal(t, "No description provided.", est.SubTasks[0].Help)
	assert.Empty(t, client.reqs, "no call should be made for an empty task")
}

func TestEstimator_KeywordFallbacks(t *testing.T) {
	cases := []struct {
		task  string
		hours float64
	}{
		{"build the public API", 30.0},
		{"design the UI", 15.0},
		{"migrate the database", 12.0},
		{"write documentation", 10.0},
	}
	for _, tc := range cases {
		t.Run(tc.task, func(t *testing.T) {
			client := &fakeClient{err: errors.New("model unavailable")}
			svc := NewEstimatorService(client, testRetryer())

			est := svc.Estimate(context.Background(), tc.task)

			assert.Equal(t, tc.hours, est.DurationHours)
			require.Len(t, est.SubTasks, 1)
			assert.Equal(t, "Sub-task 1 for "+tc.task, est.SubTasks[0].Description)
			assert.Equal(t, "Default step", est.SubTasks[0].Help)
		})
	}
}

func TestEstimator_FencedResponseWithProse(t *testing.T) {
	client := &fakeClient{text: "Here is my estimate:\n```json\n" +
		`{"duration": "16 hours", "sub_tasks": [{"sub_task": "Wireframes", "help": "Mobile first"}]}` +
		"\n```\nLet me know if you need more detail."}
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "design the UI")

	assert.Equal(t, 16.0, est.DurationHours)
	require.Len(t, est.SubTasks, 1)
	assert.Equal(t, "Wireframes", est.SubTasks[0].Description)
}

func TestEstimator_MissingFieldsFallBack(t *testing.T) {
	client := &fakeClient{text: `{"duration": 20}`}
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "write documentation")
	assert.Equal(t, 10.0, est.DurationHours)
}

func TestEstimator_UnparseableDurationFallsBack(t *testing.T) {
	client := &fakeClient{text: `{"duration": "soonish", "sub_tasks": [{"sub_task": "x", "help": "y"}]}`}
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "build the public API")
	assert.Equal(t, 30.0, est.DurationHours)
	assert.Equal(t, "Default step", est.SubTasks[0].Help)
}

func TestEstimator_MalformedSubTasksKeepDuration(t *testing.T) {
	client := &fakeClient{text: `{"duration": 18, "sub_tasks": "just do it"}`}
	svc := NewEstimatorService(client, testRetryer())

	est := svc.Estimate(context.Background(), "refactor billing")

	assert.Equal(t, 18.0, est.DurationHours)
	require.Len(t, est.SubTasks, 1)
	assert.Equal(t, "Sub-task 1 for refactor billing", est.SubTasks[0].Description)
	assert.Equal(t, "Basic step", est.SubTasks[0].Help)
}
