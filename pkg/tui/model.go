// Package tui provides the Bubble Tea focus-timer interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Minhthien4/study-room/pkg/room"
	"github.com/Minhthien4/study-room/pkg/session"
	"github.com/Minhthien4/study-room/pkg/timeutil"
)

// Banner captures machine notifications so the view can render them
// instead of writing to the terminal under the TUI.
type Banner struct {
	mu      sync.Mutex
	title   string
	message string
}

func (b *Banner) Info(title, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.title = title
	b.message = message
}

func (b *Banner) Confirm(string, string) bool { return false }

func (b *Banner) Last() (string, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title, b.message
}

// Reset drops the stored notification once it has been shown.
func (b *Banner) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.title = ""
	b.message = ""
}

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmExit
	confirmDone
)

// tickMsg carries the generation it was scheduled for so ticks from a
// torn-down session are dropped instead of draining the new one.
type tickMsg struct {
	generation int
}

// Model drives one focus session for one room.
type Model struct {
	machine  *session.Machine
	room     *room.Room
	theme    Theme
	banner   *Banner
	minutes  int
	progress progress.Model

	width  int
	height int

	confirm confirmKind
	err     error
}

// NewModel builds the focus view. Start has not been called yet; Init
// starts the session so the first tick lines up with program start.
func NewModel(machine *session.Machine, r *room.Room, banner *Banner, minutes int) *Model {
	theme := ThemeNamed(r.Theme)
	return &Model{
		machine:  machine,
		room:     r,
		theme:    theme,
		banner:   banner,
		minutes:  minutes,
		progress: progress.New(progress.WithSolidFill(string(theme.Accent)), progress.WithoutPercentage()),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if err := m.machine.Start(context.Background(), m.room.ID, m.minutes); err != nil {
		m.err = err
		return tea.Quit
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	generation := m.machine.Generation()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// Err reports the start failure, if any, after the program exits.
func (m *Model) Err() error {
	return m.err
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.machine.Generation() {
		return m, nil
	}
	state, err := m.machine.Tick(context.Background(), msg.generation)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	switch state {
	case session.Running, session.Paused:
		return m, m.scheduleTick()
	default:
		// Completed, or reset to Idle by an external clear. The view
		// lingers so the celebration is visible; any key exits.
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != confirmNone {
		return m.handleConfirmKey(msg)
	}

	switch m.machine.State() {
	case session.Completed, session.Abandoned, session.Idle:
		return m, tea.Quit
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.confirm = confirmExit
		return m, nil
	case " ", "p":
		m.machine.TogglePause()
		return m, nil
	case "d":
		m.confirm = confirmDone
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		kind := m.confirm
		m.confirm = confirmNone
		switch kind {
		case confirmExit:
			if err := m.machine.Abandon(); err != nil {
				m.err = err
			}
			return m, tea.Quit
		case confirmDone:
			if err := m.machine.CompleteManual(context.Background(), m.room.ID); err != nil {
				m.err = err
				return m, tea.Quit
			}
			_ = m.machine.Abandon()
			return m, tea.Quit
		}
		return m, nil
	default:
		m.confirm = confirmNone
		return m, nil
	}
}

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	goalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	accent := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(m.theme.Dim)

	var b strings.Builder
	b.WriteString(accent.Render(m.room.Name))
	b.WriteString("\n\n")

	switch m.machine.State() {
	case session.Completed:
		b.WriteString(accent.Render("✦ ✧ ✦  Tuyệt vời!  ✦ ✧ ✦"))
		b.WriteString("\n")
		if _, message := m.banner.Last(); message != "" {
			b.WriteString(goalStyle.Render(message))
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render("nhấn phím bất kỳ để thoát"))
	default:
		clock := timeutil.FormatClock(m.machine.TimeLeft())
		b.WriteString(bigClockStyle(m.theme).Render(clock))
		b.WriteString("\n")
		total := m.minutes * 60
		if total > 0 {
			elapsed := float64(total-m.machine.TimeLeft()) / float64(total)
			b.WriteString(m.progress.ViewAs(elapsed))
			b.WriteString("\n")
		}
		if m.machine.State() == session.Paused {
			b.WriteString(pausedStyle.Render("tạm dừng"))
			b.WriteString("\n")
		}
		if m.room.DailyGoal != "" {
			b.WriteString(goalStyle.Render(fmt.Sprintf("mục tiêu: %s", m.room.DailyGoal)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("space tạm dừng · d hoàn thành · q thoát"))
	}

	if m.confirm != confirmNone {
		b.WriteString("\n\n")
		switch m.confirm {
		case confirmExit:
			b.WriteString(dim.Render("Rời đi bây giờ sẽ không tính phiên này. Thoát? [y/N]"))
		case confirmDone:
			b.WriteString(dim.Render("Đánh dấu hoàn thành hôm nay? [y/N]"))
		}
	}

	content := b.String()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func bigClockStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Dim)
}
