// Package notify carries user-facing notifications out of the core:
// informational messages, yes/no confirmations, and the fire-and-forget
// celebration signal.
package notify

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Sink receives notifications from the engine. Confirm blocks until the
// user answers; Info must never block state transitions.
type Sink interface {
	Info(title, message string)
	Confirm(title, message string) bool
}

// Celebrator is the cosmetic completion effect. Implementations must be
// fire-and-forget; a failing celebration never blocks the engine.
type Celebrator func()

// Terminal is the CLI Sink: colored output plus a y/N prompt on stdin.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal wires a Terminal sink to stdin and the color-aware stdout.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: color.Output}
}

func (t *Terminal) Info(title, message string) {
	b := color.New(color.Bold)
	_, _ = b.Fprintf(t.Out, "%s\n", title)
	_, _ = fmt.Fprintf(t.Out, "%s\n", message)
}

func (t *Terminal) Confirm(title, message string) bool {
	b := color.New(color.Bold, color.FgHiYellow)
	_, _ = b.Fprintf(t.Out, "%s\n", title)
	_, _ = fmt.Fprintf(t.Out, "%s [y/N]: ", message)

	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// TerminalCelebration prints the completion banner. It stands in for
// the confetti burst the desktop shell shows.
func TerminalCelebration() {
	c := color.New(color.FgHiMagenta, color.Bold)
	_, _ = c.Fprintln(color.Output, "✦ ✧ ✦  tuyệt vời!  ✦ ✧ ✦")
}

// Discard drops every notification and rejects every confirmation.
// Useful in tests and in non-interactive invocations.
type Discard struct{}

func (Discard) Info(string, string) {}

func (Discard) Confirm(string, string) bool { return false }

var (
	_ Sink = (*Terminal)(nil)
	_ Sink = Discard{}
)
