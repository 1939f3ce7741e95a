// Package schedule projects a room's weekly recurrence and completion
// log onto the current week, and owns the schedule-edit lock rule.
package schedule

import (
	"math"
	"time"

	"github.com/Minhthien4/study-room/pkg/dates"
	"github.com/Minhthien4/study-room/pkg/room"
)

// Status classifies one scheduled day of the current week.
type Status string

const (
	StatusDone   Status = "done"
	StatusMissed Status = "missed"
	StatusToday  Status = "today"
	StatusFuture Status = "future"
)

// WeekDay is one scheduled day resolved against the completion log.
// Derived on every projection, never persisted.
type WeekDay struct {
	Key    string
	DayID  time.Weekday
	Label  string
	Status Status
}

// Projection splits the current week's scheduled days into history
// (done or missed) and queue (today or upcoming), in Monday-first
// order, plus completion counters for the week.
type Projection struct {
	History   []WeekDay
	Queue     []WeekDay
	Percent   int
	Completed int
	Total     int
}

// Project derives the weekly projection for a room at the given
// instant. It is a pure function: same inputs, same output, no side
// effects.
func Project(now time.Time, r *room.Room) Projection {
	todayKey := dates.DayKey(now)

	p := Projection{
		History: make([]WeekDay, 0, 7),
		Queue:   make([]WeekDay, 0, 7),
	}

	for _, d := range dates.CurrentWeek(now) {
		if !r.ScheduledOn(d.DayID) {
			continue
		}
		p.Total++
		wd := WeekDay{Key: d.Key, DayID: d.DayID, Label: d.Label}
		switch {
		case r.DoneOn(d.Key):
			wd.Status = StatusDone
			p.Completed++
			p.History = append(p.History, wd)
		case d.Key < todayKey:
			wd.Status = StatusMissed
			p.History = append(p.History, wd)
		case d.Key == todayKey:
			wd.Status = StatusToday
			p.Queue = append(p.Queue, wd)
		default:
			wd.Status = StatusFuture
			p.Queue = append(p.Queue, wd)
		}
	}

	if p.Total > 0 {
		p.Percent = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// Editable is the single source of truth for the schedule-edit lock:
// the recurrence set may change only on Sunday, unless the operator
// override is set. The override never affects focus-start gating.
func Editable(now time.Time, overrideUnlocked bool) bool {
	return overrideUnlocked || now.Weekday() == time.Sunday
}
