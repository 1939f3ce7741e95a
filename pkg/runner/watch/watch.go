// Package watch provides the runner logic for the live room listing.
package watch

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/Minhthien4/study-room/pkg/app"
	"github.com/Minhthien4/study-room/pkg/printers"
	"github.com/Minhthien4/study-room/pkg/store"
)

// Watch reprints the room table whenever the data directory changes,
// for keeping a listing open next to a focus session in another
// terminal.
type Watch struct {
	ShowID bool

	Persistence store.Persistence
	Service     *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	n.render(ctx, &pp)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventSessionChanged {
				continue
			}
			n.render(ctx, &pp)
		}
	}
}

func (n *Watch) render(ctx context.Context, pp *printers.PrettyPrint) {
	rooms, err := n.Service.Rooms(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(color.Output, "watch: %v\n", err)
		return
	}
	pp.NewLine()
	pp.TitleWithCount("Phòng học", len(rooms))
	pp.Rooms(n.Service.Clock.Now(), rooms...)
}
