package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Minhthien4/study-room/pkg/app"
	"github.com/Minhthien4/study-room/pkg/clock"
	"github.com/Minhthien4/study-room/pkg/notify"
	"github.com/Minhthien4/study-room/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyroom",
		Short: base.Wrap80("Track study rooms, weekly schedules, and focus sessions on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addRemove(topLevel)
	addSchedule(topLevel)
	addDone(topLevel)
	addFocus(topLevel)
	addSet(topLevel)
	addTask(topLevel)
	addLink(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// newService stands up persistence and the app layer. Startup recovery
// for a crashed session runs inside app.New, before any command logic.
func newService(ctx context.Context, sink notify.Sink, celebrate notify.Celebrator) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, p, clock.System{}, sink, celebrate, cfg.Unlocked())
}

func terminalService(ctx context.Context) (*app.Service, error) {
	return newService(ctx, notify.NewTerminal(), notify.TerminalCelebration)
}
