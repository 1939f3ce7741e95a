package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Minhthien4/study-room/pkg/dates"
	"github.com/Minhthien4/study-room/pkg/glyph"
	"github.com/Minhthien4/study-room/pkg/room"
	"github.com/Minhthien4/study-room/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" room")
	default:
		_, _ = c.Println(" rooms")
	}
}

// Rooms prints a one-line-per-room table with the week strip, streak,
// and completion percentage.
func (pp *PrettyPrint) Rooms(now time.Time, rooms ...*room.Room) {
	if len(rooms) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Room"), glyph.Bold("Week"), glyph.Bold("Streak"), glyph.Bold("Done"))
	} else {
		tbl.AddRow(glyph.Bold("Room"), glyph.Bold("Week"), glyph.Bold("Streak"), glyph.Bold("Done"))
	}
	for _, r := range rooms {
		p := schedule.Project(now, r)
		streak := ""
		if r.Streak > 0 {
			streak = fmt.Sprintf("%s %d", glyph.Streak, r.Streak)
		}
		done := fmt.Sprintf("%d%%", p.Percent)
		if pp.ShowID {
			tbl.AddRow(r.ID, r.Name, WeekStrip(p), streak, done)
		} else {
			tbl.AddRow(r.Name, WeekStrip(p), streak, done)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Room prints the full card for a single room.
func (pp *PrettyPrint) Room(now time.Time, r *room.Room) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	t := color.New()

	_, _ = b.Print(r.Name)
	if r.Streak > 0 {
		_, _ = t.Printf("  %s %d", glyph.Streak, r.Streak)
	}
	_, _ = t.Println("")
	if pp.ShowID {
		_, _ = f.Printf("%s\n", r.ID)
	}

	pp.Week(now, r)

	if r.DailyGoal != "" {
		_, _ = f.Print("goal  ")
		_, _ = t.Println(r.DailyGoal)
	}
	if r.Notes != "" {
		_, _ = f.Print("notes ")
		_, _ = t.Println(r.Notes)
	}
	if len(r.Tasks) > 0 {
		_, _ = f.Println("tasks")
		for _, task := range r.Tasks {
			mark := glyph.None
			if task.Completed {
				mark = glyph.Done
			}
			_, _ = t.Printf("  %s %s\n", mark, task.Text)
		}
	}
	if len(r.Links) > 0 {
		_, _ = f.Println("links")
		for _, link := range r.Links {
			_, _ = t.Printf("  %s ", link.Name)
			_, _ = f.Println(link.URL)
		}
	}
	_, _ = t.Println("")
}

// Week prints the labeled Monday-first strip for one room.
func (pp *PrettyPrint) Week(now time.Time, r *room.Room) {
	f := color.New(color.Faint)
	t := color.New()

	p := schedule.Project(now, r)
	days := append(append([]schedule.WeekDay{}, p.History...), p.Queue...)
	byKey := make(map[string]schedule.WeekDay, len(days))
	for _, d := range days {
		byKey[d.Key] = d
	}

	labels := make([]string, 0, 7)
	marks := make([]string, 0, 7)
	for _, wd := range dates.CurrentWeek(now) {
		labels = append(labels, fmt.Sprintf("%-3s", wd.Label))
		if d, ok := byKey[wd.Key]; ok {
			marks = append(marks, fmt.Sprintf("%-3s", statusGlyph(d.Status).String()))
		} else {
			marks = append(marks, fmt.Sprintf("%-3s", glyph.None.String()))
		}
	}
	_, _ = f.Println(strings.Join(labels, ""))
	_, _ = t.Println(strings.Join(marks, ""))
	if p.Total > 0 {
		_, _ = f.Printf("%d of %d this week (%d%%)\n", p.Completed, p.Total, p.Percent)
	}
}

// WeekStrip renders a projection as a compact seven-symbol string,
// Monday first, blanks on unscheduled days.
func WeekStrip(p schedule.Projection) string {
	marks := make(map[time.Weekday]string, 7)
	for _, d := range p.History {
		marks[d.DayID] = statusGlyph(d.Status).String()
	}
	for _, d := range p.Queue {
		marks[d.DayID] = statusGlyph(d.Status).String()
	}

	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	var sb strings.Builder
	for _, day := range order {
		if m, ok := marks[day]; ok {
			sb.WriteString(m)
		} else {
			sb.WriteString(glyph.None.String())
		}
	}
	return sb.String()
}

func statusGlyph(s schedule.Status) glyph.Status {
	switch s {
	case schedule.StatusDone:
		return glyph.Done
	case schedule.StatusMissed:
		return glyph.Missed
	case schedule.StatusToday:
		return glyph.Today
	case schedule.StatusFuture:
		return glyph.Future
	default:
		return glyph.None
	}
}
