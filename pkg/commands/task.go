package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/printers"
	"github.com/Minhthien4/study-room/pkg/room"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage a room's task list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [room] [text]",
		Short: "Add a task",
		Example: `
studyroom task add toán "làm đề thi thử"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(updateRoom(args[0], func(r *room.Room) {
				r.AddTask(strings.Join(args[1:], " "))
			}))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle [room] [n]",
		Short: "Toggle the n-th task done or not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(mutateTask(args[0], args[1], func(r *room.Room, id string) bool {
				return r.ToggleTask(id)
			}))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "remove [room] [n]",
		Aliases: []string{"rm"},
		Short:   "Remove the n-th task",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(mutateTask(args[0], args[1], func(r *room.Room, id string) bool {
				return r.RemoveTask(id)
			}))
		},
	})

	topLevel.AddCommand(cmd)
}

// mutateTask resolves the 1-based task position to its id and applies
// the operation.
func mutateTask(ref, position string, op func(*room.Room, string) bool) error {
	ctx := context.Background()
	s, err := terminalService(ctx)
	if err != nil {
		return err
	}
	r, err := s.Resolve(ctx, ref)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(position)
	if err != nil || n < 1 || n > len(r.Tasks) {
		return fmt.Errorf("room %q has no task %q", r.Name, position)
	}
	id := r.Tasks[n-1].ID

	found := false
	r, err = s.Update(ctx, r.ID, func(r *room.Room) {
		found = op(r, id)
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("room %q has no task %q", r.Name, position)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Room(s.Clock.Now(), r)
	return nil
}
