// Package done provides the runner logic for the manual daily check-in.
package done

import (
	"context"
	"errors"
	"fmt"

	"github.com/Minhthien4/study-room/pkg/app"
	"github.com/Minhthien4/study-room/pkg/printers"
	"github.com/Minhthien4/study-room/pkg/session"
)

// Done marks today complete for a room without running a timer.
type Done struct {
	Ref   string
	Force bool

	Service *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	r, err := n.Service.Resolve(ctx, n.Ref)
	if err != nil {
		return err
	}

	if !n.Force && n.Service.Sink != nil {
		prompt := fmt.Sprintf("Đánh dấu hôm nay đã hoàn thành cho phòng %q?", r.Name)
		if !n.Service.Sink.Confirm("Hoàn thành", prompt) {
			return nil
		}
	}

	err = n.Service.MarkDone(ctx, r.ID)
	if err != nil && !errors.Is(err, session.ErrAlreadyDoneToday) {
		return err
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
