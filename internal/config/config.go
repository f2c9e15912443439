package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the workflow constants sourced from the environment.
// Invalid values fail process startup; there are no partial fallbacks.
type Config struct {
	// MaxRetries bounds LLM invocation attempts on transient errors.
	MaxRetries int

	// MinWait and MaxWait bound the exponential backoff between attempts.
	MinWait time.Duration
	MaxWait time.Duration

	// BaseDelay is the fixed inter-call delay applied before each
	// candidate evaluation, used for external rate limiting.
	BaseDelay time.Duration

	// MaxEmployeesPerTask caps team size for both AI and manual assignment.
	MaxEmployeesPerTask int

	// HoursPerDay converts estimated hours into workdays.
	HoursPerDay int

	// DBPath is the SQLite session store location.
	DBPath string

	// EmployeesFile is the JSON roster location.
	EmployeesFile string
}

// DefaultConfig returns a Config with the stock defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:          10,
		MinWait:             83 * time.Millisecond,
		MaxWait:             60 * time.Second,
		BaseDelay:           10 * time.Millisecond,
		MaxEmployeesPerTask: 4,
		HoursPerDay:         8,
		DBPath:              "data/crewplan.db",
		EmployeesFile:       "data/employees.json",
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset values. Returns an error for any invalid value.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("CREWPLAN_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("CREWPLAN_MAX_RETRIES must be a positive integer, got %q", v)
		}
		cfg.MaxRetries = n
	}
	if v := os.Getenv("CREWPLAN_MIN_WAIT"); v != "" {
		d, err := parseSeconds(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("CREWPLAN_MIN_WAIT must be a positive number of seconds, got %q", v)
		}
		cfg.MinWait = d
	}
	if v := os.Getenv("CREWPLAN_MAX_WAIT"); v != "" {
		d, err := parseSeconds(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("CREWPLAN_MAX_WAIT must be a positive number of seconds, got %q", v)
		}
		cfg.MaxWait = d
	}
	if cfg.MaxWait < cfg.MinWait {
		return Config{}, fmt.Errorf("CREWPLAN_MAX_WAIT (%s) must be >= CREWPLAN_MIN_WAIT (%s)", cfg.MaxWait, cfg.MinWait)
	}
	if v := os.Getenv("CREWPLAN_BASE_DELAY"); v != "" {
		d, err := parseSeconds(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("CREWPLAN_BASE_DELAY must be a non-negative number of seconds, got %q", v)
		}
		cfg.BaseDelay = d
	}
	if v := os.Getenv("CREWPLAN_MAX_EMPLOYEES_PER_TASK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("CREWPLAN_MAX_EMPLOYEES_PER_TASK must be a positive integer, got %q", v)
		}
		cfg.MaxEmployeesPerTask = n
	}
	if v := os.Getenv("CREWPLAN_HOURS_PER_DAY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("CREWPLAN_HOURS_PER_DAY must be a positive integer, got %q", v)
		}
		cfg.HoursPerDay = n
	}
	if v := os.Getenv("CREWPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CREWPLAN_EMPLOYEES_FILE"); v != "" {
		cfg.EmployeesFile = v
	}

	return cfg, nil
}

// parseSeconds converts a decimal seconds string (e.g. "0.083") to a Duration.
func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}
