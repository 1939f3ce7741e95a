package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/printers"
	"github.com/Minhthien4/study-room/pkg/room"
)

func addLink(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "link",
		Aliases: []string{"links"},
		Short:   "Manage a room's bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	name := ""
	addCmd := &cobra.Command{
		Use:   "add [room] [url]",
		Short: "Add a bookmark",
		Example: `
studyroom link add toán khanacademy.org --name "Khan Academy"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(updateRoom(args[0], func(r *room.Room) {
				r.AddLink(name, args[1])
			}))
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Display name for the bookmark.")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "remove [room] [n]",
		Aliases: []string{"rm"},
		Short:   "Remove the n-th bookmark",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(removeLink(args[0], args[1]))
		},
	})

	topLevel.AddCommand(cmd)
}

func removeLink(ref, position string) error {
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
	if err != nil || n < 1 || n > len(r.Links) {
		return fmt.Errorf("room %q has no link %q", r.Name, position)
	}
	id := r.Links[n-1].ID

	r, err = s.Update(ctx, r.ID, func(r *room.Room) {
		r.RemoveLink(id)
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Room(s.Clock.Now(), r)
	return nil
}
