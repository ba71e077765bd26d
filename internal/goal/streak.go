package goal

import (
	"sort"
	"time"
)

// UpdateStreak recomputes the current consecutive-completion streak and raises
// the longest streak when beaten. The walk is anchored at today: a day with no
// completed log for today breaks the streak immediately, even if yesterday's
// run is intact. LongestStreak never decreases.
func UpdateStreak(g *Goal, now time.Time) {
	completed := make([]DailyLog, 0, len(g.DailyLogs))
	for _, l := range g.DailyLogs {
		if l.Completed {
			completed = append(completed, l)
		}
	}

	if len(completed) == 0 {
		g.CurrentStreak = 0
		return
	}

	sort.Slice(completed, func(i, j int) bool {
		return completed[i].Date.After(completed[j].Date)
	})

	today := DayOf(now)
	streak := 0
	for i, l := range completed {
		expected := today.AddDate(0, 0, -i)
		if !DayOf(l.Date).Equal(expected) {
			break
		}
		streak++
	}

	g.CurrentStreak = streak
	if streak > g.LongestStreak {
		g.LongestStreak = streak
	}
	engineLog.LogStreakUpdate(g.ID, g.CurrentStreak, g.LongestStreak)
}
