package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Minhthien4/study-room/pkg/printers"
	"github.com/Minhthien4/study-room/pkg/room"
	"github.com/Minhthien4/study-room/pkg/tui"
)

// addSet wires the small per-room setters: goal, note, theme. These are
// simple enough to run against the service directly.
func addSet(topLevel *cobra.Command) {
	addGoal(topLevel)
	addNote(topLevel)
	addTheme(topLevel)
}

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal [room] [text]",
		Short: "Set a room's daily goal",
		Example: `
studyroom goal toán "giải 10 bài tập"
studyroom goal toán ""
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(updateRoom(args[0], func(r *room.Room) {
				r.DailyGoal = strings.Join(args[1:], " ")
			}))
		},
	}
	topLevel.AddCommand(cmd)
}

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "note [room] [text]",
		Aliases: []string{"notes"},
		Short:   "Set a room's notes",
		Example: `
studyroom note toán "ôn chương 3 trước kỳ thi"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(updateRoom(args[0], func(r *room.Room) {
				r.Notes = strings.Join(args[1:], " ")
			}))
		},
	}
	topLevel.AddCommand(cmd)
}

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme [room] [name]",
		Short:     "Pick a room's focus-view theme",
		ValidArgs: tui.ThemeNames(),
		Example: `
studyroom theme toán ocean
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[1])
			if !validTheme(name) {
				return fmt.Errorf("unknown theme %q, pick one of %s",
					args[1], strings.Join(tui.ThemeNames(), ", "))
			}
			return oo.HandleError(updateRoom(args[0], func(r *room.Room) {
				r.Theme = name
			}))
		},
	}
	topLevel.AddCommand(cmd)
}

func validTheme(name string) bool {
	for _, t := range tui.ThemeNames() {
		if t == name {
			return true
		}
	}
	return false
}

// updateRoom resolves, mutates, stores, and reprints one room.
func updateRoom(ref string, mutate func(*room.Room)) error {
	ctx := context.Background()
	s, err := terminalService(ctx)
	if err != nil {
		return err
	}
	r, err := s.Resolve(ctx, ref)
	if err != nil {
		return err
	}
	if r, err = s.Update(ctx, r.ID, mutate); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Room(s.Clock.Now(), r)
	return nil
}
