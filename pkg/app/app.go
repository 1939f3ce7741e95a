// Package app provides high-level operations for rooms and focus
// sessions. It wraps persistence, projection, and the session machine
// so UIs and CLIs can share logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Minhthien4/study-room/pkg/clock"
	"github.com/Minhthien4/study-room/pkg/dates"
	"github.com/Minhthien4/study-room/pkg/notify"
	"github.com/Minhthien4/study-room/pkg/room"
	"github.com/Minhthien4/study-room/pkg/schedule"
	"github.com/Minhthien4/study-room/pkg/session"
	"github.com/Minhthien4/study-room/pkg/store"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrEmptyName     = errors.New("app: room name required")
)

// Service owns a persistence handle, the injected clock, and the one
// session machine for the process. Recovery has already run by the time
// New returns, so no start request can race the crash evidence.
type Service struct {
	Persistence store.Persistence
	Clock       clock.Clock
	Sink        notify.Sink

	// Unlocked is the operator override for schedule editing. It is
	// threaded into schedule.Editable and nowhere else; focus gating
	// never sees it.
	Unlocked bool

	machine *session.Machine
}

// New builds the service and runs startup recovery before anything else
// can touch the session store.
func New(ctx context.Context, p store.Persistence, c clock.Clock, sink notify.Sink, celebrate notify.Celebrator, unlocked bool) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	if c == nil {
		c = clock.System{}
	}
	if _, err := session.Recover(ctx, p, p, sink); err != nil {
		return nil, err
	}
	return &Service{
		Persistence: p,
		Clock:       c,
		Sink:        sink,
		Unlocked:    unlocked,
		machine:     session.NewMachine(c, p, p, sink, celebrate),
	}, nil
}

// Machine exposes the process-wide session state machine.
func (s *Service) Machine() *session.Machine {
	return s.machine
}

// Rooms returns every room in creation order.
func (s *Service) Rooms(ctx context.Context) ([]*room.Room, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Rooms(ctx), nil
}

// Resolve finds a room by id, exact name, or unique name prefix.
func (s *Service) Resolve(ctx context.Context, ref string) (*room.Room, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("app: room reference required")
	}
	if r, err := s.Persistence.Room(ctx, ref); err == nil {
		return r, nil
	}

	var match *room.Room
	lower := strings.ToLower(ref)
	for _, r := range s.Persistence.Rooms(ctx) {
		name := strings.ToLower(r.Name)
		if name == lower {
			return r, nil
		}
		if strings.HasPrefix(name, lower) {
			if match != nil {
				return nil, fmt.Errorf("app: %q matches more than one room", ref)
			}
			match = r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("app: no room matches %q", ref)
	}
	return match, nil
}

// Create adds a new empty room.
func (s *Service) Create(ctx context.Context, name string) (*room.Room, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	r := room.New(name)
	if err := s.Persistence.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a room permanently. A running session for the room is
// torn down first so no orphaned record survives.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if s.machine.RoomID() == id {
		_ = s.machine.Abandon()
	}
	return s.Persistence.Delete(id)
}

// Projection derives the room's current-week breakdown.
func (s *Service) Projection(r *room.Room) schedule.Projection {
	return schedule.Project(s.Clock.Now(), r)
}

// Editable reports whether the schedule may be edited right now.
func (s *Service) Editable() bool {
	return schedule.Editable(s.Clock.Now(), s.Unlocked)
}

// SetSchedule replaces a room's recurrence set. Outside the unlocked
// window this is a silent no-op: changed reports false and no error is
// returned, mirroring how the shell disables the day buttons.
func (s *Service) SetSchedule(ctx context.Context, id string, days []time.Weekday) (changed bool, err error) {
	if s.Persistence == nil {
		return false, ErrNoPersistence
	}
	if !s.Editable() {
		return false, nil
	}
	r, err := s.Persistence.Room(ctx, id)
	if err != nil {
		return false, err
	}
	r.Schedule = normalizeDays(days)
	if err := s.Persistence.Store(r); err != nil {
		return false, err
	}
	return true, nil
}

// MarkDone is the manual check-in: same guard and effect as a natural
// completion, without touching the timer.
func (s *Service) MarkDone(ctx context.Context, id string) error {
	return s.machine.CompleteManual(ctx, id)
}

// Update applies a mutation to a room and stores the result.
func (s *Service) Update(ctx context.Context, id string, mutate func(*room.Room)) (*room.Room, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	r, err := s.Persistence.Room(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(r)
	if err := s.Persistence.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// DoneToday reports whether the room already holds today's key.
func (s *Service) DoneToday(r *room.Room) bool {
	return r.DoneOn(dates.DayKey(s.Clock.Now()))
}

// ScheduledToday reports whether today is one of the room's recurrence
// days.
func (s *Service) ScheduledToday(r *room.Room) bool {
	return r.ScheduledOn(s.Clock.Now().Weekday())
}

// normalizeDays dedupes and keeps only the 7-value weekday domain.
// Duplicates are harmless to the projector but wasteful to store.
func normalizeDays(days []time.Weekday) []time.Weekday {
	seen := map[time.Weekday]bool{}
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
