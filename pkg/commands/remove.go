package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	force := false

	cmd := &cobra.Command{
		Use:     "remove [room]",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a room and its history",
		Example: `
studyroom remove toán
studyroom remove toán --force
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a room")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := terminalService(context.Background())
			if err != nil {
				return err
			}
			r := remove.Remove{
				Ref:     strings.Join(args, " "),
				Force:   force,
				Service: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}
