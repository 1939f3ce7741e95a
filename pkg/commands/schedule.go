package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/commands/options"
	"github.com/Minhthien4/study-room/pkg/runner/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	do := &options.DaysOptions{}

	cmd := &cobra.Command{
		Use:   "schedule [room]",
		Short: "Set a room's weekly study days (Sundays only)",
		Long: "Set a room's weekly study days.\n\n" +
			"The schedule is locked during the week and opens every Sunday,\n" +
			"so mid-week the plan is something to keep, not something to\n" +
			"renegotiate. Set unlocked to true in the config to override.",
		Example: `
studyroom schedule toán --days mon,wed,fri
studyroom schedule toán -d sat,sun
studyroom schedule toán -d ""
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a room")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := do.GetDays()
			if err != nil {
				return err
			}
			s, err := terminalService(context.Background())
			if err != nil {
				return err
			}
			r := schedule.Schedule{
				Ref:     strings.Join(args, " "),
				Days:    days,
				Service: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddDaysArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
