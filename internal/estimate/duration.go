// Package estimate normalizes the heterogeneous duration shapes an LLM may
// emit (numbers, textual ranges, nested bound objects) into a single hour
// count, and converts hours into workday figures for the task board.
package estimate

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseable signals that no hour estimate could be derived from the
// input. A recoverable "no estimate" condition, never a fatal error.
var ErrUnparseable = errors.New("unparseable duration")

var unitPattern = regexp.MustCompile(`(?i)\s*(hours|hrs|h)\s*`)

// ParseDuration converts a duration value decoded from JSON into hours.
// Accepted shapes, first match wins:
//   - non-negative number
//   - string: single number or "lo-hi" range (mean), hour units stripped
//   - object with lower/upper (or lower_bound/upper_bound) pair: mean
//   - object with min/max pair: mean
//   - object with "total": recursively normalized
//   - object with "breakdown" object: sum of its parseable values
//   - any other object: sum of its object-valued entries that parse
//
// Anything else is ErrUnparseable.
func ParseDuration(input any) (float64, error) {
	switch v := input.(type) {
	case float64:
		return nonNegative(v)
	case int:
		return nonNegative(float64(v))
	case int64:
		return nonNegative(float64(v))
	case string:
		return parseString(v)
	case map[string]any:
		return parseObject(v)
	default:
		return 0, ErrUnparseable
	}
}

func nonNegative(v float64) (float64, error) {
	if v < 0 {
		return 0, ErrUnparseable
	}
	return v, nil
}

func parseString(s string) (float64, error) {
	s = strings.TrimSpace(unitPattern.ReplaceAllString(s, ""))

	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) != 2 {
			return 0, ErrUnparseable
		}
		low, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		high, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil || low < 0 || high < 0 {
			return 0, ErrUnparseable
		}
		return (low + high) / 2, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, ErrUnparseable
	}
	return v, nil
}

func parseObject(m map[string]any) (float64, error) {
	// Explicit bound pair: {"lower": X, "upper": Y} or *_bound naming.
	if lo, hi, ok := boundPair(m, "lower", "lower_bound", "upper", "upper_bound"); ok {
		return meanOf(lo, hi)
	}

	// {"min": X, "max": Y}
	if lo, hi, ok := boundPair(m, "min", "min", "max", "max"); ok {
		return meanOf(lo, hi)
	}

	// {"total": ...}
	if total, ok := m["total"]; ok && total != nil {
		return ParseDuration(total)
	}

	// {"breakdown": {"key": ..., ...}}
	if raw, ok := m["breakdown"]; ok {
		if breakdown, ok := raw.(map[string]any); ok && len(breakdown) > 0 {
			return sumValues(breakdown, false)
		}
	}

	// Category-keyed breakdown without the explicit wrapper: sum every
	// object-valued entry that parses.
	return sumValues(m, true)
}

// boundPair looks up a lower bound under key a or b, and an upper bound
// under key c or d. Both must be present and numeric-convertible.
func boundPair(m map[string]any, a, b, c, d string) (float64, float64, bool) {
	lo, loOK := lookup(m, a, b)
	hi, hiOK := lookup(m, c, d)
	if !loOK || !hiOK {
		return 0, 0, false
	}
	loF, err1 := toNumber(lo)
	hiF, err2 := toNumber(hi)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return loF, hiF, true
}

func lookup(m map[string]any, primary, fallback string) (any, bool) {
	if v, ok := m[primary]; ok && v != nil {
		return v, true
	}
	if v, ok := m[fallback]; ok && v != nil {
		return v, true
	}
	return nil, false
}

func meanOf(lo, hi float64) (float64, error) {
	return (lo + hi) / 2, nil
}

// sumValues normalizes each value and sums the ones that parse, ignoring
// the rest. objectsOnly restricts candidates to nested objects.
func sumValues(m map[string]any, objectsOnly bool) (float64, error) {
	total := 0.0
	parsed := false
	for _, v := range m {
		if v == nil {
			continue
		}
		if objectsOnly {
			if _, ok := v.(map[string]any); !ok {
				continue
			}
		}
		if hours, err := ParseDuration(v); err == nil {
			total += hours
			parsed = true
		}
	}
	if !parsed {
		return 0, ErrUnparseable
	}
	return total, nil
}

// toNumber converts a scalar bound value (number or numeric string) to float64.
func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, ErrUnparseable
		}
		return f, nil
	default:
		return 0, ErrUnparseable
	}
}

// AdjustDuration applies the planning buffer to a raw estimate: 75% of the
// raw hours, floored at two hours.
func AdjustDuration(hours float64) float64 {
	adjusted := hours * 0.75
	if adjusted < 2 {
		return 2
	}
	return adjusted
}

// DaysNeeded converts an hour estimate into whole workdays, minimum one.
func DaysNeeded(hours float64, hoursPerDay int) int {
	if hoursPerDay <= 0 {
		return 1
	}
	days := int(math.Ceil(hours / float64(hoursPerDay)))
	if days < 1 {
		return 1
	}
	return days
}
