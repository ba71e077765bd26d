package goal

import "time"

// TimeRange scopes an analytics query. Accepted for API compatibility with the
// dashboard; the completion average is intentionally computed over the full
// log history, not windowed (see DESIGN.md).
type TimeRange string

const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
)

func (r TimeRange) Valid() bool {
	return r == RangeWeek || r == RangeMonth || r == RangeYear
}

// Summary is the per-goal analytics projection. WeeklyCompletion is the
// full-history completion average; WeekCompletionRate is the percentage for
// the current calendar week only.
type Summary struct {
	GoalID             string     `json:"goal_id"`
	Title              string     `json:"title"`
	Category           Category   `json:"category"`
	Progress           int        `json:"progress"`
	CurrentStreak      int        `json:"current_streak"`
	LongestStreak      int        `json:"longest_streak"`
	Status             Status     `json:"status"`
	DailyLogs          []DailyLog `json:"daily_logs"`
	WeeklyCompletion   float64    `json:"weekly_completion"`
	WeekCompletionRate int        `json:"week_completion_rate"`
}

// Project builds read-only summaries for a set of goals as of now. It never
// mutates the aggregates; callers get an empty (non-nil) slice for a user with
// no goals.
func Project(goals []Goal, _ TimeRange, now time.Time) []Summary {
	summaries := make([]Summary, 0, len(goals))
	for i := range goals {
		g := &goals[i]
		summaries = append(summaries, Summary{
			GoalID:             g.ID,
			Title:              g.Title,
			Category:           g.Category,
			Progress:           g.Progress,
			CurrentStreak:      g.CurrentStreak,
			LongestStreak:      g.LongestStreak,
			Status:             g.Status,
			DailyLogs:          g.DailyLogs,
			WeeklyCompletion:   completionAverage(g.DailyLogs),
			WeekCompletionRate: WeeklyCompletionRate(g, now),
		})
	}
	return summaries
}

// completionAverage is the mean of the completed indicator (1/0) over all logs
func completionAverage(logs []DailyLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	completed := 0
	for _, l := range logs {
		if l.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(logs))
}
