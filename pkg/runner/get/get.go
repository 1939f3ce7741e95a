// Package get provides the runner logic for listing rooms.
package get

import (
	"context"

	"github.com/Minhthien4/study-room/pkg/app"
	"github.com/Minhthien4/study-room/pkg/printers"
)

// Get prints all rooms, or one room's full card.
type Get struct {
	Ref    string
	ShowID bool

	Service *app.Service
}

func (g *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	now := g.Service.Clock.Now()

	if g.Ref != "" {
		r, err := g.Service.Resolve(ctx, g.Ref)
		if err != nil {
			return err
		}
		pp.NewLine()
		pp.Room(now, r)
		return nil
	}

	rooms, err := g.Service.Rooms(ctx)
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.TitleWithCount("Phòng học", len(rooms))
	pp.Rooms(now, rooms...)
	return nil
}
