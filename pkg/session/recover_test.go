package session

import (
	"context"
	"testing"
)

func TestRecoverDanglingRunningSession(t *testing.T) {
	r := scheduledRoom()
	r.Streak = 7
	st := &memStore{active: &ActiveSession{RoomID: r.ID, IsRunning: true, TimeLeftSeconds: 600}}
	rooms := newMemRooms(r)
	sink := &recordSink{}

	res, err := Recover(context.Background(), st, rooms, sink)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if !res.Recovered || res.RoomID != r.ID {
		t.Fatalf("recovery should report the room: %+v", res)
	}
	if r.Streak != 0 {
		t.Fatalf("streak should reset to 0, got %d", r.Streak)
	}
	if st.active != nil {
		t.Fatal("stale session record should be deleted")
	}
	if len(sink.titles) != 1 || sink.titles[0] != "Mất chuỗi!" {
		t.Fatalf("abandoned-session notification missing: %v", sink.titles)
	}

	// A subsequent start is permitted: gating checks only schedule and
	// history, never the streak.
	m := NewMachine(fixedClock{wednesday}, st, rooms, nil, nil)
	if err := m.Start(context.Background(), r.ID, 25); err != nil {
		t.Fatalf("start after recovery should succeed: %v", err)
	}
}

func TestRecoverRunsOnce(t *testing.T) {
	r := scheduledRoom()
	r.Streak = 3
	st := &memStore{active: &ActiveSession{RoomID: r.ID, IsRunning: true, TimeLeftSeconds: 10}}
	rooms := newMemRooms(r)

	if _, err := Recover(context.Background(), st, rooms, nil); err != nil {
		t.Fatalf("recover: %v", err)
	}
	r.Streak = 5
	res, err := Recover(context.Background(), st, rooms, nil)
	if err != nil {
		t.Fatalf("second recover: %v", err)
	}
	if res.Recovered {
		t.Fatal("nothing left to recover on the second pass")
	}
	if r.Streak != 5 {
		t.Fatalf("second pass must not reset again, got %d", r.Streak)
	}
}

func TestRecoverNoSession(t *testing.T) {
	res, err := Recover(context.Background(), &memStore{}, newMemRooms(), &recordSink{})
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if res.Recovered {
		t.Fatal("nothing to recover")
	}
}

func TestRecoverStoppedSessionDiscarded(t *testing.T) {
	r := scheduledRoom()
	r.Streak = 2
	st := &memStore{active: &ActiveSession{RoomID: r.ID, IsRunning: false, TimeLeftSeconds: 30}}

	res, err := Recover(context.Background(), st, newMemRooms(r), &recordSink{})
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if res.Recovered {
		t.Fatal("a cleanly stopped session is not a crash")
	}
	if r.Streak != 2 {
		t.Fatalf("stopped session must not cost the streak, got %d", r.Streak)
	}
	if st.active != nil {
		t.Fatal("stale record should still be discarded")
	}
}

func TestRecoverUnknownRoomDiscardedSilently(t *testing.T) {
	st := &memStore{active: &ActiveSession{RoomID: "gone", IsRunning: true, TimeLeftSeconds: 5}}
	sink := &recordSink{}

	res, err := Recover(context.Background(), st, newMemRooms(), sink)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if res.Recovered {
		t.Fatal("missing room should not count as a recovery")
	}
	if st.active != nil {
		t.Fatal("orphaned record should be discarded")
	}
	if len(sink.titles) != 0 {
		t.Fatalf("discard should be silent, got %v", sink.titles)
	}
}
