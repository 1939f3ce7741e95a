// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// DaysOptions captures a comma-separated weekday list flag.
type DaysOptions struct {
	Days string
}

var dayAliases = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

// AddDaysArgs wires the --days flag on the provided command.
func AddDaysArgs(cmd *cobra.Command, o *DaysOptions) {
	cmd.Flags().StringVarP(&o.Days, "days", "d", "",
		"Comma-separated study days, e.g. mon,wed,fri.")
}

// GetDays parses the flag into weekdays. An empty flag means an empty
// schedule; duplicates collapse.
func (o *DaysOptions) GetDays() ([]time.Weekday, error) {
	trimmed := strings.TrimSpace(o.Days)
	if trimmed == "" {
		return nil, nil
	}

	seen := map[time.Weekday]bool{}
	days := make([]time.Weekday, 0, 7)
	for _, part := range strings.Split(trimmed, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		d, ok := dayAliases[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days, nil
}
