package goal

import (
	"math"
	"time"
)

// fallbackHorizonDays is the conceptual window used when a goal has neither a
// deadline nor a countable daily target, so a progress number is always
// displayable.
const fallbackHorizonDays = 30

// CalculateProgress recomputes the overall 0-100 completion estimate. Three
// mutually exclusive rules, in priority order:
//
//  1. deadline set: completed logs measured against the inclusive day count
//     from creation to deadline
//  2. daily timeframe with a positive "days" target: completed logs measured
//     against the target value
//  3. otherwise: completed logs measured against a 30-day horizon
//
// The result is always clamped to [0, 100].
func CalculateProgress(g *Goal, now time.Time) {
	completedCount := g.CompletedLogCount()

	switch {
	case g.Deadline != nil:
		totalDays := inclusiveDays(g.CreatedAt, *g.Deadline)
		if totalDays <= 0 {
			// Deadline on or before creation: done the moment anything is logged
			if completedCount > 0 {
				g.Progress = 100
			} else {
				g.Progress = 0
			}
		} else {
			g.Progress = ratioPercent(completedCount, float64(totalDays))
		}
		engineLog.LogProgressBranch(g.ID, "deadline", completedCount, float64(totalDays), g.Progress)

	case g.Timeframe == TimeframeDaily && g.TargetUnit == "days" && g.TargetValue != nil && *g.TargetValue > 0:
		// The target stays a float all the way down; fractional targets must
		// not truncate to a zero denominator
		g.Progress = ratioPercent(completedCount, *g.TargetValue)
		engineLog.LogProgressBranch(g.ID, "count-target", completedCount, *g.TargetValue, g.Progress)

	default:
		g.Progress = ratioPercent(completedCount, fallbackHorizonDays)
		engineLog.LogProgressBranch(g.ID, "fallback", completedCount, float64(fallbackHorizonDays), g.Progress)
	}

	if g.Progress < 0 {
		g.Progress = 0
	}
}

// inclusiveDays counts whole days from start to end, both endpoints included
func inclusiveDays(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours()/24)) + 1
}

func ratioPercent(numerator int, denominator float64) int {
	if denominator <= 0 {
		return 0
	}
	pct := int(math.Round(float64(numerator) / denominator * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
