package session

import (
	"context"
	"fmt"

	"github.com/Minhthien4/study-room/pkg/clock"
	"github.com/Minhthien4/study-room/pkg/dates"
	"github.com/Minhthien4/study-room/pkg/notify"
	"github.com/Minhthien4/study-room/pkg/room"
)

// State is the timer lifecycle position.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
	Abandoned
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// Machine drives one room's focus timer. At most one session is live
// process-wide; starting a new one clears whatever came before. Every
// tick rewrites the durable record so a crash leaves evidence behind.
type Machine struct {
	clock     clock.Clock
	store     Store
	rooms     Rooms
	sink      notify.Sink
	celebrate notify.Celebrator

	state      State
	roomID     string
	timeLeft   int
	generation int
}

// NewMachine wires the state machine to its collaborators. sink and
// celebrate may be nil for headless use.
func NewMachine(c clock.Clock, st Store, rooms Rooms, sink notify.Sink, celebrate notify.Celebrator) *Machine {
	return &Machine{clock: c, store: st, rooms: rooms, sink: sink, celebrate: celebrate}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) RoomID() string { return m.roomID }

// TimeLeft is the remaining countdown in seconds.
func (m *Machine) TimeLeft() int { return m.timeLeft }

// Generation is the liveness token ticks must present. It changes every
// time a session is created or torn down, which retires any tick still
// in flight for an older session.
func (m *Machine) Generation() int { return m.generation }

// Start moves Idle → Running for the room. The gate is the room's
// schedule and history for today, never the schedule-edit override.
func (m *Machine) Start(ctx context.Context, roomID string, minutes int) error {
	if minutes <= 0 {
		return ErrInvalidMinutes
	}
	r, err := m.rooms.Room(ctx, roomID)
	if err != nil {
		return err
	}
	if err := CanStart(m.clock.Now(), r); err != nil {
		return err
	}

	// Singleton: any prior session dies here, and its ticks with it.
	_ = m.store.ClearActive()
	m.generation++
	m.state = Running
	m.roomID = roomID
	m.timeLeft = minutes * 60

	return m.store.SaveActive(ActiveSession{
		RoomID:          m.roomID,
		IsRunning:       true,
		TimeLeftSeconds: m.timeLeft,
	})
}

// Tick applies one second of countdown. A tick presenting a stale
// generation, arriving while paused, or finding the durable record gone
// or re-pointed is dropped, so a zombie timer can never double-count or
// revive a cleared session. Reaching zero completes the session.
func (m *Machine) Tick(ctx context.Context, generation int) (State, error) {
	if generation != m.generation || m.state != Running {
		return m.state, nil
	}
	active, err := m.store.LoadActive()
	if err != nil || active.RoomID != m.roomID {
		m.reset()
		return m.state, nil
	}

	m.timeLeft--
	if m.timeLeft <= 0 {
		return Completed, m.finish(ctx)
	}
	return m.state, m.store.SaveActive(ActiveSession{
		RoomID:          m.roomID,
		IsRunning:       true,
		TimeLeftSeconds: m.timeLeft,
	})
}

// TogglePause flips Running ⇄ Paused. Paused sessions simply stop
// ticking; the durable record keeps whatever the last tick wrote.
func (m *Machine) TogglePause() State {
	switch m.state {
	case Running:
		m.state = Paused
	case Paused:
		m.state = Running
	}
	return m.state
}

// Abandon tears the session down after the user confirmed leaving.
// Leaving cleanly is not a penalty: streak and history stay untouched.
func (m *Machine) Abandon() error {
	if m.state != Running && m.state != Paused {
		return ErrNotRunning
	}
	m.reset()
	m.state = Abandoned
	return m.store.ClearActive()
}

// CompleteManual records today as done without running a timer. Same
// not-done-today guard and same history/streak effect as a natural
// completion; the active-session record is untouched.
func (m *Machine) CompleteManual(ctx context.Context, roomID string) error {
	r, err := m.rooms.Room(ctx, roomID)
	if err != nil {
		return err
	}
	today := dates.DayKey(m.clock.Now())
	if !r.MarkDone(today) {
		return ErrAlreadyDoneToday
	}
	if err := m.rooms.Store(r); err != nil {
		return err
	}
	m.announce(r)
	return nil
}

// finish applies the natural-completion effects in order: history and
// streak, clear the durable record, celebration, notification.
func (m *Machine) finish(ctx context.Context) error {
	roomID := m.roomID
	m.reset()
	m.state = Completed

	r, err := m.rooms.Room(ctx, roomID)
	if err != nil {
		return m.store.ClearActive()
	}
	if r.MarkDone(dates.DayKey(m.clock.Now())) {
		if err := m.rooms.Store(r); err != nil {
			_ = m.store.ClearActive()
			return err
		}
	}
	if err := m.store.ClearActive(); err != nil {
		return err
	}
	m.announce(r)
	return nil
}

func (m *Machine) announce(r *room.Room) {
	if m.celebrate != nil {
		m.celebrate()
	}
	if m.sink == nil {
		return
	}
	msg := fmt.Sprintf("Bạn đã hoàn thành phiên học. Chuỗi: %d", r.Streak)
	if r.DailyGoal != "" {
		msg += fmt.Sprintf("\nĐừng quên mục tiêu: %q", r.DailyGoal)
	}
	m.sink.Info("Tuyệt vời!", msg)
}

// reset invalidates outstanding ticks and drops the in-memory session.
func (m *Machine) reset() {
	m.generation++
	m.state = Idle
	m.roomID = ""
	m.timeLeft = 0
}
