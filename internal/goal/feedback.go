package goal

import "time"

// maxFeedbackEntries caps the feedback ledger; oldest entries are evicted
// first when an append would exceed it.
const maxFeedbackEntries = 50

// AppendFeedback appends one system-generated feedback entry to the ledger and
// trims it to the most recent maxFeedbackEntries. Message and data come from
// the AI collaborator verbatim; the engine never composes text. The caller is
// expected to persist the aggregate afterwards (compute-then-save), and may
// retry the whole operation on a failed save.
func AppendFeedback(g *Goal, kind FeedbackKind, message string, data map[string]any, now time.Time) {
	g.AIFeedback = append(g.AIFeedback, FeedbackEntry{
		Date:    now,
		Kind:    kind,
		Message: message,
		Data:    data,
	})
	if excess := len(g.AIFeedback) - maxFeedbackEntries; excess > 0 {
		g.AIFeedback = g.AIFeedback[excess:]
		engineLog.LogFeedbackTrim(g.ID, excess)
	}
}

// SuggestAdjustment records an adjustment-kind feedback entry referencing the
// current and suggested target. It does not change the target itself or write
// to the adjustments history; accepting the suggestion is a separate, explicit
// owner action.
func SuggestAdjustment(g *Goal, newTarget, reason string, now time.Time) {
	AppendFeedback(g, FeedbackAdjustment,
		"Consider adjusting your goal: "+reason,
		map[string]any{
			"suggested_target": newTarget,
			"current_target":   g.Target,
		}, now)
}

// UnlockAchievement adds a badge to the goal and emits a celebration feedback
// entry. Idempotent by achievement name: unlocking an already-held badge is a
// no-op with no duplicate feedback.
func UnlockAchievement(g *Goal, a Achievement, now time.Time) {
	for _, held := range g.Achievements {
		if held.Name == a.Name {
			return
		}
	}
	if a.UnlockedAt.IsZero() {
		a.UnlockedAt = now
	}
	g.Achievements = append(g.Achievements, a)
	engineLog.LogAchievementUnlock(g.ID, a.Name)
	AppendFeedback(g, FeedbackCelebration,
		"Achievement Unlocked: "+a.Name+"! "+a.Description, nil, now)
}
