package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/commands/options"
	"github.com/Minhthien4/study-room/pkg/runner/focus"
	"github.com/Minhthien4/study-room/pkg/tui"
)

func addFocus(topLevel *cobra.Command) {
	fo := &options.FocusOptions{}

	cmd := &cobra.Command{
		Use:   "focus [room]",
		Short: "Run a focus session for a room",
		Long: "Run a full-screen countdown for one room.\n\n" +
			"Finishing the countdown marks today complete and grows the\n" +
			"streak. Leaving mid-session (after confirming) counts nothing.\n" +
			"Killing the process mid-session costs the streak on the next run.",
		Example: `
studyroom focus toán
studyroom focus toán --length 45m
studyroom focus toán -l 1h30m
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a room")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := fo.GetMinutes()
			if err != nil {
				return err
			}
			// Machine notifications render inside the TUI, not on the
			// terminal underneath it.
			banner := &tui.Banner{}
			s, err := newService(context.Background(), banner, nil)
			if err != nil {
				return err
			}
			f := focus.Focus{
				Ref:     strings.Join(args, " "),
				Minutes: minutes,
				Banner:  banner,
				Service: s,
			}
			return oo.HandleError(f.Do(context.Background()))
		},
	}

	options.AddFocusArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
