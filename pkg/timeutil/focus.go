package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultFocus is the fallback session length used when none is provided.
	DefaultFocus = "25m"

	// MaxFocusMinutes caps a single session at a day. Anything longer is
	// almost certainly a typo.
	MaxFocusMinutes = 24 * 60
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitMap        = map[string]time.Duration{
		"":        time.Minute,
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
	}
)

// ParseFocus parses a human-friendly session length (for example "25",
// "25m", or "1h30m") and returns the length in whole minutes along with a
// canonical, compact representation. A bare number means minutes. When the
// input is empty, the default of 25 minutes is used.
func ParseFocus(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultFocus
	}

	lower := strings.ToLower(trimmed)
	remaining := lower
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 || matches[0] == "" {
			return 0, "", fmt.Errorf("invalid length segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid length value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported length unit %q", unitStr)
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	minutes := int(total / time.Minute)
	if minutes <= 0 {
		return 0, "", fmt.Errorf("session length must be at least one minute")
	}
	if minutes > MaxFocusMinutes {
		return 0, "", fmt.Errorf("session length %q exceeds one day", trimmed)
	}

	return minutes, FormatFocus(minutes), nil
}

// FormatFocus renders a minute count using hour/minute tokens.
func FormatFocus(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// FormatClock renders remaining seconds as a countdown, MM:SS below an
// hour and H:MM:SS above.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
