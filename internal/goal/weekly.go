package goal

import (
	"math"
	"time"
)

// WeekStart returns the Sunday-anchored start of the week containing t
func WeekStart(t time.Time) time.Time {
	day := DayOf(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeeklyCompletionRate is the completion percentage over logs falling inside
// the current week (Sunday through Saturday). Returns 0 when the week has no
// logs at all.
func WeeklyCompletionRate(g *Goal, now time.Time) int {
	start := WeekStart(now)
	end := start.AddDate(0, 0, 6)

	total, completed := 0, 0
	for _, l := range g.DailyLogs {
		d := DayOf(l.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		total++
		if l.Completed {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// BuildWeeklySummary rolls the week beginning at weekStart into a summary
// snapshot. External rollup jobs call this and append the result to the
// goal's weeklySummaries; the engine itself never does so eagerly.
func BuildWeeklySummary(g *Goal, weekStart time.Time) WeeklySummary {
	start := DayOf(weekStart)
	end := start.AddDate(0, 0, 6)

	var (
		total      int
		completed  int
		moodSum    int
		moodCount  int
		valueTotal float64
		challenges []string
	)
	for _, l := range g.DailyLogs {
		d := DayOf(l.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		total++
		if l.Completed {
			completed++
		}
		if l.Mood != nil {
			moodSum += *l.Mood
			moodCount++
		}
		if l.Value != nil {
			valueTotal += *l.Value
		}
		challenges = append(challenges, l.Challenges...)
	}

	summary := WeeklySummary{
		WeekStart:  start,
		WeekEnd:    end,
		TotalValue: valueTotal,
		Challenges: challenges,
	}
	if total > 0 {
		summary.CompletionRate = int(math.Round(float64(completed) / float64(total) * 100))
	}
	if moodCount > 0 {
		summary.AverageMood = float64(moodSum) / float64(moodCount)
	}
	return summary
}
