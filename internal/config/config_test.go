package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MaxRetries)
	assert.Equal(t, 83*time.Millisecond, cfg.MinWait)
	assert.Equal(t, 60*time.Second, cfg.MaxWait)
	assert.Equal(t, 10*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, 4, cfg.MaxEmployeesPerTask)
	assert.Equal(t, 8, cfg.HoursPerDay)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CREWPLAN_MAX_RETRIES", "3")
	t.Setenv("CREWPLAN_MIN_WAIT", "0.5")
	t.Setenv("CREWPLAN_MAX_WAIT", "30")
	t.Setenv("CREWPLAN_BASE_DELAY", "0")
	t.Setenv("CREWPLAN_MAX_EMPLOYEES_PER_TASK", "2")
	t.Setenv("CREWPLAN_HOURS_PER_DAY", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.MinWait)
	assert.Equal(t, 30*time.Second, cfg.MaxWait)
	assert.Equal(t, time.Duration(0), cfg.BaseDelay)
	assert.Equal(t, 2, cfg.MaxEmployeesPerTask)
	assert.Equal(t, 6, cfg.HoursPerDay)
}

func TestLoad_InvalidValuesFailStartup(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"retries zero", "CREWPLAN_MAX_RETRIES", "0"},
		{"retries garbage", "CREWPLAN_MAX_RETRIES", "many"},
		{"min wait negative", "CREWPLAN_MIN_WAIT", "-1"},
		{"max wait zero", "CREWPLAN_MAX_WAIT", "0"},
		{"base delay negative", "CREWPLAN_BASE_DELAY", "-0.5"},
		{"team size zero", "CREWPLAN_MAX_EMPLOYEES_PER_TASK", "0"},
		{"hours per day negative", "CREWPLAN_HOURS_PER_DAY", "-8"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MaxWaitBelowMinWait(t *testing.T) {
	t.Setenv("CREWPLAN_MIN_WAIT", "10")
	t.Setenv("CREWPLAN_MAX_WAIT", "5")

	_, err := Load()
	assert.Error(t, err)
}
