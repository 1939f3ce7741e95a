// Package dates holds the calendar helpers shared by scheduling and
// session gating: canonical day keys and the Monday-first current week.
package dates

import "time"

const layoutISO = "2006-01-02"

// DayKey maps an instant to its canonical local calendar-day key,
// YYYY-MM-DD. The key ignores time-of-day and uses the zone attached to
// the instant, so two instants on the same local day share a key.
func DayKey(t time.Time) string {
	return t.Format(layoutISO)
}

// ParseDayKey is the inverse of DayKey. The result is midnight local
// time on that day.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(layoutISO, key, time.Local)
}

// WeekDate is one calendar day of the current week.
type WeekDate struct {
	Key   string
	DayID time.Weekday
	Label string
}

var labels = map[time.Weekday]string{
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

// Label returns the short display label for a weekday.
func Label(d time.Weekday) string {
	return labels[d]
}

// CurrentWeek enumerates the 7 days of the week containing t, ordered
// Monday through Sunday. DayID is time.Weekday (Sunday=0), matching how
// room schedules are stored. The result is recomputed on every call.
func CurrentWeek(t time.Time) []WeekDate {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	monday := t.AddDate(0, 0, -offset)

	week := make([]WeekDate, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		week = append(week, WeekDate{
			Key:   DayKey(d),
			DayID: d.Weekday(),
			Label: Label(d.Weekday()),
		})
	}
	return week
}
