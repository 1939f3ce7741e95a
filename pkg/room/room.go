// Package room defines the tracked-topic record: its fixed weekly
// recurrence, the completion-date log, and the streak counter.
package room

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// Room is one user-created topic. Schedule holds the weekdays a focus
// session is expected (time.Weekday, Sunday=0). History holds the
// canonical YYYY-MM-DD day keys on which the goal was fulfilled; it is
// append-only and never contains duplicates. Streak counts consecutive
// completions and resets to zero when a session is abandoned uncleanly.
type Room struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Schedule  []time.Weekday `json:"schedule"`
	History   []string       `json:"history"`
	Streak    int            `json:"streak"`
	DailyGoal string         `json:"daily_goal,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	Theme     string         `json:"theme,omitempty"`
	Tasks     []Task         `json:"tasks,omitempty"`
	Links     []Link         `json:"links,omitempty"`
	Created   time.Time      `json:"created"`
}

// Task is one checklist item inside a room.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Link is a bookmarked resource attached to a room.
type Link struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// New creates an empty room with a fresh id and no schedule.
func New(name string) *Room {
	return &Room{
		ID:      NewID(),
		Name:    strings.TrimSpace(name),
		Created: time.Now(),
	}
}

// NewID returns an opaque random identifier.
func NewID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// ScheduledOn reports whether the room expects a session on the given
// weekday.
func (r *Room) ScheduledOn(day time.Weekday) bool {
	for _, d := range r.Schedule {
		if d == day {
			return true
		}
	}
	return false
}

// DoneOn reports whether the day key is already in the completion log.
func (r *Room) DoneOn(key string) bool {
	for _, h := range r.History {
		if h == key {
			return true
		}
	}
	return false
}

// MarkDone records a completion for the day key and bumps the streak.
// Marking the same day twice is a no-op; the bool reports whether the
// room changed.
func (r *Room) MarkDone(key string) bool {
	if r.DoneOn(key) {
		return false
	}
	r.History = append(r.History, key)
	r.Streak++
	return true
}

// ResetStreak zeroes the streak counter. The history log is untouched.
func (r *Room) ResetStreak() {
	r.Streak = 0
}

// AddTask appends a checklist item and returns it.
func (r *Room) AddTask(text string) Task {
	t := Task{ID: NewID(), Text: strings.TrimSpace(text)}
	r.Tasks = append(r.Tasks, t)
	return t
}

// ToggleTask flips the completion state of the task with the given id.
func (r *Room) ToggleTask(id string) bool {
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			r.Tasks[i].Completed = !r.Tasks[i].Completed
			return true
		}
	}
	return false
}

// RemoveTask deletes the task with the given id.
func (r *Room) RemoveTask(id string) bool {
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// AddLink appends a bookmark. A missing scheme defaults to https, and a
// missing name falls back to the URL itself.
func (r *Room) AddLink(name, url string) Link {
	url = strings.TrimSpace(url)
	if url != "" && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	if name = strings.TrimSpace(name); name == "" {
		name = url
	}
	l := Link{ID: NewID(), Name: name, URL: url}
	r.Links = append(r.Links, l)
	return l
}

// RemoveLink deletes the bookmark with the given id.
func (r *Room) RemoveLink(id string) bool {
	for i := range r.Links {
		if r.Links[i].ID == id {
			r.Links = append(r.Links[:i], r.Links[i+1:]...)
			return true
		}
	}
	return false
}
