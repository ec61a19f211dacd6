// Package timeutil parses the human friendly durations accepted in config,
// such as "12h", "2d" or "1w3d".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units          = map[string]time.Duration{
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
		"w":       7 * 24 * time.Hour,
		"wk":      7 * 24 * time.Hour,
		"wks":     7 * 24 * time.Hour,
		"week":    7 * 24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}
)

// Parse reads a duration. Anything time.ParseDuration understands is
// accepted, plus day and week units ("2d", "1w2d6h"). A bare number is
// seconds. Zero is allowed and means "no expiry" to callers that care.
func Parse(input string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if d, err := time.ParseDuration(s); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("duration %q is negative", input)
		}
		return d, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 0 {
		return time.Duration(n) * time.Second, nil
	}

	total := time.Duration(0)
	for rest := s; len(rest) > 0; {
		m := segmentPattern.FindStringSubmatch(rest)
		if len(m) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", m[2])
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	return total, nil
}

// Format renders d with week, day, hour, minute and second tokens, e.g.
// "1w2d" or "12h".
func Format(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	steps := []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	var b strings.Builder
	remaining := d
	for _, u := range steps {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		fmt.Fprintf(&b, "%d%s", count, u.label)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
