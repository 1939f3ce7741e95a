// Package schedule provides the runner logic for editing a room's
// recurrence set.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/Minhthien4/study-room/pkg/app"
	"github.com/Minhthien4/study-room/pkg/glyph"
	"github.com/Minhthien4/study-room/pkg/printers"
)

// Schedule replaces a room's study days, subject to the Sunday-only
// edit lock.
type Schedule struct {
	Ref  string
	Days []time.Weekday

	Service *app.Service
}

func (n *Schedule) Do(ctx context.Context) error {
	r, err := n.Service.Resolve(ctx, n.Ref)
	if err != nil {
		return err
	}

	changed, err := n.Service.SetSchedule(ctx, r.ID, n.Days)
	if err != nil {
		return err
	}
	if !changed {
		f := color.New(color.Faint)
		_, _ = fmt.Fprintf(color.Output, "%s %s\n",
			glyph.Locked,
			f.Sprint("lịch chỉ mở khóa vào Chủ nhật (hoặc đặt unlocked trong cấu hình)"))
		return nil
	}

	r, err = n.Service.Resolve(ctx, r.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Room(n.Service.Clock.Now(), r)
	return nil
}
