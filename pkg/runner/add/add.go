// Package add provides the runner logic for creating rooms.
package add

import (
	"context"
	"time"

	"github.com/Minhthien4/study-room/pkg/app"
	"github.com/Minhthien4/study-room/pkg/printers"
	"github.com/Minhthien4/study-room/pkg/room"
)

// Add creates a room, optionally with an initial schedule. Setting the
// schedule at creation time skips the edit lock: a brand-new room has
// no history the lock protects.
type Add struct {
	Name string
	Days []time.Weekday
	Goal string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	r, err := n.Service.Create(ctx, n.Name)
	if err != nil {
		return err
	}
	if len(n.Days) > 0 || n.Goal != "" {
		r, err = n.Service.Update(ctx, r.ID, func(r *room.Room) {
			if len(n.Days) > 0 {
				r.Schedule = n.Days
			}
			r.DailyGoal = n.Goal
		})
		if err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Room(n.Service.Clock.Now(), r)
	return nil
}
