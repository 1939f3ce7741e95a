package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/commands/options"
	"github.com/Minhthien4/study-room/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DaysOptions{}
	goal := ""

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a study room",
		Example: `
studyroom add toán
studyroom add "triết học" --days mon,wed,fri
studyroom add anh-văn -d tue,thu --goal "30 từ vựng mới"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := do.GetDays()
			if err != nil {
				return err
			}
			s, err := terminalService(context.Background())
			if err != nil {
				return err
			}
			a := add.Add{
				Name:    strings.Join(args, " "),
				Days:    days,
				Goal:    goal,
				Service: s,
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	options.AddDaysArgs(cmd, do)
	cmd.Flags().StringVar(&goal, "goal", "", "Daily goal shown during focus sessions.")

	topLevel.AddCommand(cmd)
}
