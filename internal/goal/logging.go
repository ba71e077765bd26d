package goal

import "log"

// EngineLogger provides leveled, categorized diagnostics for the goal engine.
// It wraps the standard log package to keep output consistent and parseable;
// recompute branch decisions are reported here as a side channel instead of
// prints inside the calculation itself.
type EngineLogger struct{}

func NewEngineLogger() *EngineLogger {
	return &EngineLogger{}
}

var engineLog = NewEngineLogger()

func (l *EngineLogger) log(level, category, format string, args ...interface{}) {
	prefix := "[GoalEngine][" + level + "][" + category + "] "
	log.Printf(prefix+format, args...)
}

// LogProgressBranch reports which progress rule fired and its inputs
func (l *EngineLogger) LogProgressBranch(goalID, branch string, completed int, denominator float64, result int) {
	l.log("DEBUG", "PROGRESS", "Goal %s branch=%s completed=%d denominator=%g progress=%d",
		goalID, branch, completed, denominator, result)
}

// LogStreakUpdate reports the streak values after a recompute
func (l *EngineLogger) LogStreakUpdate(goalID string, current, longest int) {
	l.log("DEBUG", "STREAK", "Goal %s currentStreak=%d longestStreak=%d", goalID, current, longest)
}

// LogFeedbackTrim reports ledger evictions when the cap is exceeded
func (l *EngineLogger) LogFeedbackTrim(goalID string, dropped int) {
	l.log("INFO", "FEEDBACK", "Goal %s feedback ledger trimmed, dropped %d oldest entries", goalID, dropped)
}

// LogAchievementUnlock reports a first-time badge unlock
func (l *EngineLogger) LogAchievementUnlock(goalID, name string) {
	l.log("INFO", "ACHIEVEMENT", "Goal %s unlocked achievement %q", goalID, name)
}
