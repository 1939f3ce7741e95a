package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:     "done [room]",
		Aliases: []string{"check"},
		Short:   "Mark today complete without a timer",
		Example: `
studyroom done toán
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
			d := done.Done{
				Ref:     strings.Join(args, " "),
				Force:   yes,
				Service: s,
			}
			return oo.HandleError(d.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}
