// Package remove provides the runner logic for deleting rooms.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Minhthien4/study-room/pkg/app"
)

// Remove deletes a room after confirmation. History and streak go with
// it; there is no undo.
type Remove struct {
	Ref   string
	Force bool

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	r, err := n.Service.Resolve(ctx, n.Ref)
	if err != nil {
		return err
	}

	if !n.Force {
		if n.Service.Sink == nil {
			return errors.New("refusing to delete without --force")
		}
		prompt := fmt.Sprintf("Xóa phòng %q và toàn bộ lịch sử?", r.Name)
		if !n.Service.Sink.Confirm("Xóa phòng", prompt) {
			return nil
		}
	}

	if err := n.Service.Delete(ctx, r.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "đã xóa %s\n", r.Name)
	return nil
}
