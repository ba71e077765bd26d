package goal

import "time"

// LogEntry is one day's activity submission. The date is implied by the
// caller-supplied clock, never by the entry itself.
type LogEntry struct {
	Completed  bool     `json:"completed"`
	Value      *float64 `json:"value,omitempty"`
	Mood       *int     `json:"mood,omitempty"`
	Challenges []string `json:"challenges,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Reflection string   `json:"reflection,omitempty"`
}

// RecordDailyActivity records entry against today's calendar day. A day that
// already has a log gets fully overwritten (absent fields become absent, not
// merged); otherwise a new log is appended. Streak and progress are recomputed
// before returning. The aggregate is mutated in place; persisting it is the
// caller's job.
func RecordDailyActivity(g *Goal, entry LogEntry, now time.Time) {
	today := DayOf(now)

	logged := DailyLog{
		Date:       today,
		Completed:  entry.Completed,
		Value:      entry.Value,
		Mood:       normalizeMood(entry.Mood),
		Challenges: entry.Challenges,
		Notes:      entry.Notes,
		Reflection: entry.Reflection,
	}

	replaced := false
	for i := range g.DailyLogs {
		if DayOf(g.DailyLogs[i].Date).Equal(today) {
			g.DailyLogs[i] = logged
			replaced = true
			break
		}
	}
	if !replaced {
		g.DailyLogs = append(g.DailyLogs, logged)
	}

	UpdateStreak(g, now)
	CalculateProgress(g, now)
}

// normalizeMood clamps mood to the 1-10 scale instead of rejecting it
func normalizeMood(mood *int) *int {
	if mood == nil {
		return nil
	}
	m := *mood
	if m < 1 {
		m = 1
	}
	if m > 10 {
		m = 10
	}
	return &m
}
