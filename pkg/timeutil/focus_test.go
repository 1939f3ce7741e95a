package timeutil

import "testing"

func TestParseFocus(t *testing.T) {
	for _, tc := range []struct {
		input     string
		minutes   int
		canonical string
	}{
		{"", 25, "25m"},
		{"25", 25, "25m"},
		{"25m", 25, "25m"},
		{" 45 min ", 45, "45m"},
		{"1h", 60, "1h"},
		{"1h30m", 90, "1h30m"},
		{"1h30", 90, "1h30m"},
		{"2 hours", 120, "2h"},
	} {
		minutes, canonical, err := ParseFocus(tc.input)
		if err != nil {
			t.Errorf("ParseFocus(%q): %v", tc.input, err)
			continue
		}
		if minutes != tc.minutes || canonical != tc.canonical {
			t.Errorf("ParseFocus(%q) = (%d, %q), want (%d, %q)",
				tc.input, minutes, canonical, tc.minutes, tc.canonical)
		}
	}
}

func TestParseFocusRejects(t *testing.T) {
	for _, input := range []string{"0", "0m", "-5", "25x", "abc", "1500h"} {
		if _, _, err := ParseFocus(input); err == nil {
			t.Errorf("ParseFocus(%q) accepted, want error", input)
		}
	}
}

func TestFormatClock(t *testing.T) {
	for _, tc := range []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-3, "00:00"},
		{59, "00:59"},
		{1500, "25:00"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
	} {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
