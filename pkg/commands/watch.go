package commands

import (
	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/commands/options"
	"github.com/Minhthien4/study-room/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live room listing that follows data changes",
		Example: `
studyroom watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := terminalService(cmd.Context())
			if err != nil {
				return err
			}
			w := watch.Watch{
				ShowID:      io.ShowID,
				Persistence: s.Persistence,
				Service:     s,
			}
			return oo.HandleError(w.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
