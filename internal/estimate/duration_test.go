package estimate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration_Numbers(t *testing.T) {
	got, err := ParseDuration(40.0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got)

	got, err = ParseDuration(0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = ParseDuration(-1.0)
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestParseDuration_Strings(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"50", 50},
		{"40-80", 60},
		{"40-80h", 60},
		{"40-80 hours", 60},
		{"12 hrs", 12},
		{"  8h ", 8},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	for _, bad := range []string{"abc", "", "10-20-30", "-5", "10-abc"} {
		_, err := ParseDuration(bad)
		assert.ErrorIs(t, err, ErrUnparseable, "input %q", bad)
	}
}

func TestParseDuration_BoundPairs(t *testing.T) {
	got, err := ParseDuration(map[string]any{"lower": 20.0, "upper": 40.0})
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)

	got, err = ParseDuration(map[string]any{"lower_bound": 10.0, "upper_bound": 30.0})
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)

	got, err = ParseDuration(map[string]any{"min": 4.0, "max": 8.0})
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	// Numeric strings inside bounds are accepted.
	got, err = ParseDuration(map[string]any{"lower": "20", "upper": "40"})
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)

	// A bound that is not a number makes the pair unparseable, and there is
	// nothing else to fall back on.
	_, err = ParseDuration(map[string]any{"lower": "soon", "upper": 40.0})
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestParseDuration_Total(t *testing.T) {
	got, err := ParseDuration(map[string]any{"total": "40-80h"})
	require.NoError(t, err)
	assert.Equal(t, 60.0, got)
}

func TestParseDuration_Breakdown(t *testing.T) {
	got, err := ParseDuration(map[string]any{
		"breakdown": map[string]any{"a": "10-20h", "b": "5"},
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)

	// Unparseable entries are ignored as long as something parses.
	got, err = ParseDuration(map[string]any{
		"breakdown": map[string]any{"a": "10", "b": "???"},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	// Nothing parses: unparseable.
	_, err = ParseDuration(map[string]any{
		"breakdown": map[string]any{"a": "???"},
	})
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestParseDuration_CategoryKeyedObjects(t *testing.T) {
	got, err := ParseDuration(map[string]any{
		"API Development": map[string]any{"lower": 20.0, "upper": 40.0},
		"UI Design":       map[string]any{"min": 10.0, "max": 20.0},
		"note":            "ignored scalar",
	})
	require.NoError(t, err)
	assert.Equal(t, 45.0, got)
}

func TestParseDuration_UnsupportedShapes(t *testing.T) {
	_, err := ParseDuration(true)
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = ParseDuration(nil)
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = ParseDuration(map[string]any{})
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = ParseDuration([]any{"10h"})
	assert.ErrorIs(t, err, ErrUnparseable)
}

// JSON decoding is how duration values actually arrive; make sure the
// decoded shapes line up with what ParseDuration accepts.
func TestParseDuration_FromDecodedJSON(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"duration": {"lower": 20, "upper": 40}}`), &v))
	wrapper := v.(map[string]any)

	got, err := ParseDuration(wrapper["duration"])
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)
}

func TestAdjustDuration(t *testing.T) {
	assert.Equal(t, 30.0, AdjustDuration(40))
	assert.Equal(t, 2.0, AdjustDuration(1))
	assert.Equal(t, 2.0, AdjustDuration(0))
}

func TestDaysNeeded(t *testing.T) {
	assert.Equal(t, 1, DaysNeeded(8, 8))
	assert.Equal(t, 2, DaysNeeded(9, 8))
	assert.Equal(t, 1, DaysNeeded(0.5, 8))
	assert.Equal(t, 1, DaysNeeded(0, 8))
	assert.Equal(t, 4, DaysNeeded(30, 8))
}
