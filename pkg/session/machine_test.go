package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Minhthien4/study-room/pkg/dates"
	"github.com/Minhthien4/study-room/pkg/room"
)

// 2024-03-06 is a Wednesday.
var wednesday = time.Date(2024, 3, 6, 9, 0, 0, 0, time.Local)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type memStore struct {
	active *ActiveSession
	saves  int
}

func (s *memStore) SaveActive(a ActiveSession) error {
	copy := a
	s.active = &copy
	s.saves++
	return nil
}

func (s *memStore) LoadActive() (ActiveSession, error) {
	if s.active == nil {
		return ActiveSession{}, ErrNoActiveSession
	}
	return *s.active, nil
}

func (s *memStore) ClearActive() error {
	s.active = nil
	return nil
}

type memRooms struct {
	rooms map[string]*room.Room
}

func newMemRooms(rs ...*room.Room) *memRooms {
	m := &memRooms{rooms: map[string]*room.Room{}}
	for _, r := range rs {
		m.rooms[r.ID] = r
	}
	return m
}

func (m *memRooms) Room(_ context.Context, id string) (*room.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %q not found", id)
	}
	return r, nil
}

func (m *memRooms) Store(r *room.Room) error {
	m.rooms[r.ID] = r
	return nil
}

type recordSink struct {
	titles []string
	bodies []string
}

func (s *recordSink) Info(title, message string) {
	s.titles = append(s.titles, title)
	s.bodies = append(s.bodies, message)
}

func (s *recordSink) Confirm(string, string) bool { return true }

func scheduledRoom() *room.Room {
	r := room.New("toán")
	r.Schedule = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	return r
}

func TestStartPersistsSession(t *testing.T) {
	r := scheduledRoom()
	st := &memStore{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), nil, nil)

	if err := m.Start(context.Background(), r.ID, 25); err != nil {
		t.Fatalf("start: %v", err)
	}
	if m.State() != Running {
		t.Fatalf("state should be running, got %s", m.State())
	}
	if st.active == nil || st.active.TimeLeftSeconds != 1500 || !st.active.IsRunning {
		t.Fatalf("active session not persisted correctly: %+v", st.active)
	}
	if st.active.RoomID != r.ID {
		t.Fatalf("session should reference the room: %+v", st.active)
	}
}

func TestStartGates(t *testing.T) {
	r := scheduledRoom()
	st := &memStore{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), nil, nil)
	ctx := context.Background()

	if err := m.Start(ctx, r.ID, 0); !errors.Is(err, ErrInvalidMinutes) {
		t.Fatalf("zero minutes should be rejected, got %v", err)
	}
	if err := m.Start(ctx, r.ID, -5); !errors.Is(err, ErrInvalidMinutes) {
		t.Fatalf("negative minutes should be rejected, got %v", err)
	}

	// Not scheduled on Thursday.
	thursday := wednesday.AddDate(0, 0, 1)
	m2 := NewMachine(fixedClock{thursday}, st, newMemRooms(r), nil, nil)
	if err := m2.Start(ctx, r.ID, 25); !errors.Is(err, ErrNotScheduledToday) {
		t.Fatalf("unscheduled day should be rejected, got %v", err)
	}

	// Already done today.
	r.MarkDone(dates.DayKey(wednesday))
	if err := m.Start(ctx, r.ID, 25); !errors.Is(err, ErrAlreadyDoneToday) {
		t.Fatalf("done day should be rejected, got %v", err)
	}
	if m.State() != Idle {
		t.Fatalf("rejected start must leave the machine idle, got %s", m.State())
	}
}

func TestNaturalCompletion(t *testing.T) {
	r := scheduledRoom()
	st := &memStore{}
	sink := &recordSink{}
	celebrated := 0
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), sink, func() { celebrated++ })
	ctx := context.Background()

	if err := m.Start(ctx, r.ID, 25); err != nil {
		t.Fatalf("start: %v", err)
	}
	gen := m.Generation()
	state := m.State()
	for i := 0; i < 1500; i++ {
		var err error
		state, err = m.Tick(ctx, gen)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if state != Completed {
		t.Fatalf("1500 ticks should complete the session, got %s", state)
	}
	if r.Streak != 1 {
		t.Fatalf("streak should be 1, got %d", r.Streak)
	}
	if !r.DoneOn(dates.DayKey(wednesday)) {
		t.Fatal("today should be in history")
	}
	if st.active != nil {
		t.Fatalf("active session should be cleared, got %+v", st.active)
	}
	if celebrated != 1 {
		t.Fatalf("celebration should fire once, got %d", celebrated)
	}
	if len(sink.titles) != 1 || sink.titles[0] != "Tuyệt vời!" {
		t.Fatalf("completion notification missing: %v", sink.titles)
	}
}

func TestCompletionNotificationNamesGoal(t *testing.T) {
	r := scheduledRoom()
	r.DailyGoal = "làm đề số 3"
	st := &memStore{}
	sink := &recordSink{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), sink, nil)
	ctx := context.Background()

	if err := m.Start(ctx, r.ID, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	gen := m.Generation()
	for i := 0; i < 60; i++ {
		if _, err := m.Tick(ctx, gen); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if len(sink.bodies) != 1 {
		t.Fatalf("expected one notification, got %v", sink.bodies)
	}
	body := sink.bodies[0]
	if want := "Chuỗi: 1"; !strings.Contains(body, want) {
		t.Fatalf("notification should name the streak: %q", body)
	}
	if !strings.Contains(body, "làm đề số 3") {
		t.Fatalf("notification should name the daily goal: %q", body)
	}
}

func TestPauseStopsDecrement(t *testing.T) {
	r := scheduledRoom()
	st := &memStore{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), nil, nil)
	ctx := context.Background()

	if err := m.Start(ctx, r.ID, 25); err != nil {
		t.Fatalf("start: %v", err)
	}
	gen := m.Generation()
	if _, err := m.Tick(ctx, gen); err != nil {
		t.Fatalf("tick: %v", err)
	}
	left := m.TimeLeft()

	if got := m.TogglePause(); got != Paused {
		t.Fatalf("pause should move to paused, got %s", got)
	}
	if _, err := m.Tick(ctx, gen); err != nil {
		t.Fatalf("tick while paused: %v", err)
	}
	if m.TimeLeft() != left {
		t.Fatalf("paused tick must not decrement: %d vs %d", m.TimeLeft(), left)
	}

	if got := m.TogglePause(); got != Running {
		t.Fatalf("resume should move back to running, got %s", got)
	}
	if _, err := m.Tick(ctx, gen); err != nil {
		t.Fatalf("tick after resume: %v", err)
	}
	if m.TimeLeft() != left-1 {
		t.Fatalf("resumed tick should decrement once: %d", m.TimeLeft())
	}
}

func TestStaleGenerationTickDropped(t *testing.T) {
	r := scheduledRoom()
	st := &memStore{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), nil, nil)
	ctx := context.Background()

	if err := m.Start(ctx, r.ID, 25); err != nil {
		t.Fatalf("start: %v", err)
	}
	old := m.Generation()
	if err := m.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if err := m.Start(ctx, r.ID, 25); err != nil {
		t.Fatalf("restart: %v", err)
	}
	left := m.TimeLeft()
	if _, err := m.Tick(ctx, old); err != nil {
		t.Fatalf("stale tick: %v", err)
	}
	if m.TimeLeft() != left {
		t.Fatalf("stale tick must be a no-op: %d vs %d", m.TimeLeft(), left)
	}
}

func TestTickAfterExternalClearGoesIdle(t *testing.T) {
	r := scheduledRoom()
	st := &memStore{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), nil, nil)
	ctx := context.Background()

	if err := m.Start(ctx, r.ID, 25); err != nil {
		t.Fatalf("start: %v", err)
	}
	gen := m.Generation()
	_ = st.ClearActive()

	state, err := m.Tick(ctx, gen)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if state != Idle {
		t.Fatalf("tick without a durable record should reset to idle, got %s", state)
	}
	if r.Streak != 0 || len(r.History) != 0 {
		t.Fatal("a revoked session must not complete")
	}
}

func TestAbandonLeavesRoomUntouched(t *testing.T) {
	r := scheduledRoom()
	r.Streak = 4
	st := &memStore{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), nil, nil)
	ctx := context.Background()

	if err := m.Abandon(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("abandon while idle should fail, got %v", err)
	}
	if err := m.Start(ctx, r.ID, 25); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if m.State() != Abandoned {
		t.Fatalf("state should be abandoned, got %s", m.State())
	}
	if st.active != nil {
		t.Fatal("active session should be cleared")
	}
	if r.Streak != 4 || len(r.History) != 0 {
		t.Fatal("confirmed exit must not penalize the room")
	}
}

func TestCompleteManualIdempotent(t *testing.T) {
	r := scheduledRoom()
	st := &memStore{}
	sink := &recordSink{}
	m := NewMachine(fixedClock{wednesday}, st, newMemRooms(r), sink, nil)
	ctx := context.Background()

	if err := m.CompleteManual(ctx, r.ID); err != nil {
		t.Fatalf("manual complete: %v", err)
	}
	if err := m.CompleteManual(ctx, r.ID); !errors.Is(err, ErrAlreadyDoneToday) {
		t.Fatalf("second completion should report already done, got %v", err)
	}
	if r.Streak != 1 || len(r.History) != 1 {
		t.Fatalf("manual completion applied twice: streak=%d history=%v", r.Streak, r.History)
	}
	if st.active != nil || st.saves != 0 {
		t.Fatal("manual completion must not touch the active session")
	}
}

