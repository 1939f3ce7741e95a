package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the week-strip symbol legend",
		Example: `
studyroom key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return oo.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
