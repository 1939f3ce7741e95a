package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Minhthien4/study-room/pkg/notify"
)

// RecoveryResult reports what startup recovery found.
type RecoveryResult struct {
	Recovered bool
	RoomID    string
	RoomName  string
}

// Recover inspects the persisted active session exactly once at process
// start, before any new session may begin. A record still marked
// running means the previous process died mid-session: the room loses
// its streak and the user is told. The stale record is deleted in every
// path; a record whose room no longer exists, or one that cannot be
// parsed, is discarded silently.
func Recover(ctx context.Context, st Store, rooms Rooms, sink notify.Sink) (RecoveryResult, error) {
	active, err := st.LoadActive()
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			return RecoveryResult{}, nil
		}
		// Corrupt record: discard, never fatal.
		_ = st.ClearActive()
		return RecoveryResult{}, nil
	}
	if !active.IsRunning {
		_ = st.ClearActive()
		return RecoveryResult{}, nil
	}

	r, err := rooms.Room(ctx, active.RoomID)
	if err != nil {
		_ = st.ClearActive()
		return RecoveryResult{}, nil
	}

	r.ResetStreak()
	if err := rooms.Store(r); err != nil {
		_ = st.ClearActive()
		return RecoveryResult{}, err
	}
	if sink != nil {
		sink.Info("Mất chuỗi!",
			fmt.Sprintf("Bạn đã rời đi khi chưa hết giờ tại phòng %q.", r.Name))
	}
	if err := st.ClearActive(); err != nil {
		return RecoveryResult{}, err
	}
	return RecoveryResult{Recovered: true, RoomID: r.ID, RoomName: r.Name}, nil
}
