// Package session governs the focus timer: the durable active-session
// record, the start/pause/complete state machine, and the startup
// recovery that detects crashed sessions.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/Minhthien4/study-room/pkg/dates"
	"github.com/Minhthien4/study-room/pkg/room"
)

var (
	// ErrNoActiveSession is returned by Store.LoadActive when no
	// session record is persisted.
	ErrNoActiveSession = errors.New("session: no active session")

	// ErrNotScheduledToday rejects a focus start on an unscheduled day.
	ErrNotScheduledToday = errors.New("session: room is not scheduled today")

	// ErrAlreadyDoneToday rejects a start or completion when today is
	// already in the room's history. Callers treat it as a no-op
	// status, not a failure.
	ErrAlreadyDoneToday = errors.New("session: already completed today")

	// ErrInvalidMinutes rejects a non-positive focus length.
	ErrInvalidMinutes = errors.New("session: focus length must be a positive number of minutes")

	// ErrNotRunning is returned when pausing or abandoning without a
	// live session.
	ErrNotRunning = errors.New("session: no running session")
)

// ActiveSession is the durable record of an in-progress timer. It is a
// process-wide singleton: its presence at startup with IsRunning still
// true is the crash signal recovery acts on.
type ActiveSession struct {
	RoomID          string `json:"room_id"`
	IsRunning       bool   `json:"is_running"`
	TimeLeftSeconds int    `json:"time_left_seconds"`
}

// Store persists the singleton active-session record. LoadActive
// returns ErrNoActiveSession when nothing is persisted.
type Store interface {
	SaveActive(s ActiveSession) error
	LoadActive() (ActiveSession, error)
	ClearActive() error
}

// Rooms is the slice of room persistence the session engine needs.
type Rooms interface {
	Room(ctx context.Context, id string) (*room.Room, error)
	Store(r *room.Room) error
}

// CanStart is the focus-start gate: the room must be scheduled today
// and today must not already be completed. The schedule-edit override
// never reaches this rule.
func CanStart(now time.Time, r *room.Room) error {
	if !r.ScheduledOn(now.Weekday()) {
		return ErrNotScheduledToday
	}
	if r.DoneOn(dates.DayKey(now)) {
		return ErrAlreadyDoneToday
	}
	return nil
}
