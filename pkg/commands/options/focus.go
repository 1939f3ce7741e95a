package options

import (
	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/timeutil"
)

// FocusOptions captures the session length flag.
type FocusOptions struct {
	Length string
}

func AddFocusArgs(cmd *cobra.Command, o *FocusOptions) {
	cmd.Flags().StringVarP(&o.Length, "length", "l", "",
		"Session length, e.g. 25, 45m, or 1h30m. Defaults to 25m.")
}

// GetMinutes parses the flag into whole minutes.
func (o *FocusOptions) GetMinutes() (int, error) {
	minutes, _, err := timeutil.ParseFocus(o.Length)
	return minutes, err
}
