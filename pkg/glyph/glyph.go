// Package glyph defines the symbol vocabulary used when printing weekly
// schedules and streaks.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Key:     "x",
		Symbol:  "✔",
		Meaning: "scheduled day completed",
	}, Glyph{
		Key:     "!",
		Symbol:  "✘",
		Meaning: "scheduled day missed",
	}, Glyph{
		Key:     "*",
		Symbol:  "●",
		Meaning: "scheduled today",
	}, Glyph{
		Key:     "+",
		Symbol:  "○",
		Meaning: "scheduled later this week",
	}, Glyph{
		Key:     "#",
		Symbol:  "🔥",
		Meaning: "streak",
	}, Glyph{
		Key:     "@",
		Symbol:  "⚿",
		Meaning: "schedule locked until Sunday",
	}, Glyph{
		Key:     "",
		Symbol:  " ",
		Meaning: "none",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Status indexes DefaultGlyphs for the weekly projection states.
type Status int

const (
	Done Status = iota
	Missed
	Today
	Future
	Streak
	Locked
	None
)

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	return s.Glyph().String()
}
