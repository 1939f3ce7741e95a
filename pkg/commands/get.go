package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Minhthien4/study-room/pkg/commands/options"
	"github.com/Minhthien4/study-room/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get [room]",
		Aliases: []string{"list", "ls"},
		Short:   "List rooms, or show one room's week",
		Example: `
studyroom get
studyroom get toán
studyroom get toán --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := terminalService(context.Background())
			if err != nil {
				return err
			}
			g := get.Get{
				Ref:     strings.Join(args, " "),
				ShowID:  io.ShowID,
				Service: s,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
