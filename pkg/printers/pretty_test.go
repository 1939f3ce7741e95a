package printers

import (
	"strings"
	"testing"
	"time"

	"github.com/Minhthien4/study-room/pkg/room"
	"github.com/Minhthien4/study-room/pkg/schedule"
)

func TestWeekStrip(t *testing.T) {
	// Wednesday of the week starting Monday 2024-03-04.
	wednesday := time.Date(2024, 3, 6, 14, 0, 0, 0, time.Local)

	r := room.New("toán")
	r.Schedule = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	r.MarkDone("2024-03-04")

	strip := WeekStrip(schedule.Project(wednesday, r))

	runes := []rune(strip)
	if len(runes) != 7 {
		t.Fatalf("strip %q has %d symbols, want 7", strip, len(runes))
	}
	// Monday done, Wednesday today, Friday upcoming, rest blank.
	want := []string{"✔", " ", "●", " ", "○", " ", " "}
	for i, w := range want {
		if string(runes[i]) != w {
			t.Errorf("strip[%d] = %q, want %q (full strip %q)", i, string(runes[i]), w, strip)
		}
	}
	if strings.ContainsRune(strip, '✘') {
		t.Errorf("strip %q shows a missed day, none expected", strip)
	}
}
