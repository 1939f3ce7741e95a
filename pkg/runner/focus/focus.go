// Package focus provides the runner logic for the focus-timer TUI.
package focus

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/Minhthien4/study-room/pkg/app"
	"github.com/Minhthien4/study-room/pkg/printers"
	"github.com/Minhthien4/study-room/pkg/session"
	"github.com/Minhthien4/study-room/pkg/tui"
)

// Focus runs a full-screen countdown session for one room.
type Focus struct {
	Ref     string
	Minutes int
	Banner  *tui.Banner

	Service *app.Service
}

func (n *Focus) Do(ctx context.Context) error {
	// Startup recovery may have already written a streak-loss notice;
	// show it before the alt screen swallows it.
	if title, message := n.Banner.Last(); title != "" {
		_, _ = fmt.Fprintf(color.Output, "%s %s\n", title, message)
		n.Banner.Reset()
	}

	r, err := n.Service.Resolve(ctx, n.Ref)
	if err != nil {
		return err
	}
	if err := session.CanStart(n.Service.Clock.Now(), r); err != nil {
		return err
	}

	model := tui.NewModel(n.Service.Machine(), r, n.Banner, n.Minutes)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if err := model.Err(); err != nil {
		return err
	}

	if title, message := n.Banner.Last(); title != "" {
		_, _ = fmt.Fprintf(color.Output, "\n%s %s\n", title, message)
	}

	r, err = n.Service.Resolve(ctx, r.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Room(n.Service.Clock.Now(), r)
	return nil
}
