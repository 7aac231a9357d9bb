package game

import "time"

const ymdLayout = "2006-01-02"

// DateKey formats a local-calendar day key.
func DateKey(t time.Time) string {
	return t.In(time.Local).Format(ymdLayout)
}

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayAt buckets a local clock time: morning before 12:00, afternoon
// before 18:00, evening after.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.In(time.Local).Hour(); {
	case h < 12:
		return Morning
	case h < 18:
		return Afternoon
	default:
		return Evening
	}
}

type RolloverKind int

const (
	// SameDay means the recorded login date is today; nothing to do.
	SameDay RolloverKind = iota
	// ConsecutiveDay means the recorded date is yesterday; the streak holds.
	ConsecutiveDay
	// GapDay covers everything else, including the very first run.
	GapDay
)

// classifyRollover compares the recorded login date to now. The machine has
// no terminal state: every evaluation lands back on SameDay until the
// calendar date changes again.
func classifyRollover(lastLoginDate string, now time.Time) RolloverKind {
	today := DateKey(now)
	switch lastLoginDate {
	case today:
		return SameDay
	case DateKey(now.AddDate(0, 0, -1)):
		return ConsecutiveDay
	default:
		return GapDay
	}
}
