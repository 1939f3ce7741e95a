package schedule

import (
	"testing"
	"time"

	"github.com/Minhthien4/study-room/pkg/dates"
	"github.com/Minhthien4/study-room/pkg/room"
)

// 2024-03-04 is a Monday; the week under test runs through 2024-03-10.
var (
	monday    = time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)
	wednesday = time.Date(2024, 3, 6, 10, 0, 0, 0, time.Local)
	thursday  = time.Date(2024, 3, 7, 10, 0, 0, 0, time.Local)
	sunday    = time.Date(2024, 3, 10, 10, 0, 0, 0, time.Local)
)

func monWedFri() *room.Room {
	r := room.New("toán")
	r.Schedule = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	return r
}

func TestProjectTodayAndFuture(t *testing.T) {
	// Empty history, projected on Wednesday: Monday is missed,
	// Wednesday is today, Friday is upcoming.
	r := monWedFri()
	p := Project(wednesday, r)

	if p.Total != 3 {
		t.Fatalf("total should be 3, got %d", p.Total)
	}
	if p.Completed != 0 || p.Percent != 0 {
		t.Fatalf("nothing completed yet: %+v", p)
	}
	if len(p.Queue) != 2 {
		t.Fatalf("queue should hold Wednesday and Friday, got %+v", p.Queue)
	}
	if p.Queue[0].DayID != time.Wednesday || p.Queue[0].Status != StatusToday {
		t.Fatalf("wednesday should be today: %+v", p.Queue[0])
	}
	if p.Queue[1].DayID != time.Friday || p.Queue[1].Status != StatusFuture {
		t.Fatalf("friday should be future: %+v", p.Queue[1])
	}
	if len(p.History) != 1 || p.History[0].Status != StatusMissed {
		t.Fatalf("monday should be missed: %+v", p.History)
	}
}

func TestProjectMissedDay(t *testing.T) {
	// Projected on Thursday with Wednesday unlogged: Wednesday lands in
	// history as missed, Friday stays in the queue.
	r := monWedFri()
	p := Project(thursday, r)

	var missedWed bool
	for _, wd := range p.History {
		if wd.DayID == time.Wednesday && wd.Status == StatusMissed {
			missedWed = true
		}
	}
	if !missedWed {
		t.Fatalf("wednesday should appear missed: %+v", p.History)
	}
	if p.Percent != 0 {
		t.Fatalf("upcoming friday must not affect percent: %d", p.Percent)
	}
	if len(p.Queue) != 1 || p.Queue[0].DayID != time.Friday {
		t.Fatalf("queue should hold only Friday: %+v", p.Queue)
	}
}

func TestProjectPercent(t *testing.T) {
	r := monWedFri()
	r.MarkDone(dates.DayKey(monday))
	r.MarkDone(dates.DayKey(wednesday))

	p := Project(thursday, r)
	if p.Completed != 2 || p.Total != 3 {
		t.Fatalf("expected 2/3, got %d/%d", p.Completed, p.Total)
	}
	// round(100*2/3) = 67
	if p.Percent != 67 {
		t.Fatalf("percent should round to 67, got %d", p.Percent)
	}
	if p.Percent < 0 || p.Percent > 100 {
		t.Fatalf("percent out of range: %d", p.Percent)
	}
}

func TestProjectEmptySchedule(t *testing.T) {
	r := room.New("empty")
	p := Project(wednesday, r)
	if p.Total != 0 || p.Percent != 0 {
		t.Fatalf("empty schedule should project 0/0: %+v", p)
	}
	if len(p.History)+len(p.Queue) != 0 {
		t.Fatalf("no days expected: %+v", p)
	}
}

func TestProjectPartition(t *testing.T) {
	// Every scheduled day of the week lands in exactly one output list.
	r := monWedFri()
	r.MarkDone(dates.DayKey(monday))
	for _, now := range []time.Time{monday, wednesday, thursday, sunday} {
		p := Project(now, r)
		if len(p.History)+len(p.Queue) != p.Total {
			t.Fatalf("partition broken at %s: %d+%d != %d",
				dates.DayKey(now), len(p.History), len(p.Queue), p.Total)
		}
	}
}

func TestProjectIdempotent(t *testing.T) {
	r := monWedFri()
	r.MarkDone(dates.DayKey(monday))
	first := Project(wednesday, r)
	second := Project(wednesday, r)
	if first.Percent != second.Percent || first.Completed != second.Completed ||
		len(first.History) != len(second.History) || len(first.Queue) != len(second.Queue) {
		t.Fatalf("projection changed between calls: %+v vs %+v", first, second)
	}
}

func TestEditable(t *testing.T) {
	if Editable(wednesday, false) {
		t.Fatal("schedule must be locked outside Sunday")
	}
	if !Editable(sunday, false) {
		t.Fatal("schedule must unlock on Sunday")
	}
	if !Editable(wednesday, true) {
		t.Fatal("override must unlock editing on any day")
	}
}
