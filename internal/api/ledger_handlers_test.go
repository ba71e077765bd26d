package api

import (
	"net/http"
	"testing"

	"mindtrack/internal/db"
	"mindtrack/internal/goal"
	"mindtrack/internal/store"
)

func TestAppendFeedbackHandler_RecordsEntry(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	u := seedUser(t, "ledger", "user")
	g := seedGoal(t, u.ID, "Sleep better", goal.CategorySleep)

	r := asUser(u.ID)
	r.POST("/goals/:id/feedback", AppendFeedbackHandler())
	w := postJSON(r, "POST", "/goals/"+g.ID+"/feedback", FeedbackRequest{
		Kind:    goal.FeedbackSuggestion,
		Message: "try winding down earlier",
		Data:    map[string]any{"bedtime": "22:30"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	stored, err := store.NewGoalStore(db.DB).ByID(u.ID, g.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if len(stored.AIFeedback) != 1 {
		t.Fatalf("expected 1 feedback entry, got %d", len(stored.AIFeedback))
	}
	entry := stored.AIFeedback[0]
	if entry.Kind != goal.FeedbackSuggestion || entry.Message != "try winding down earlier" {
		t.Errorf("entry not stored verbatim: %+v", entry)
	}
	if entry.Data["bedtime"] != "22:30" {
		t.Errorf("payload lost: %v", entry.Data)
	}
}

func TestAppendFeedbackHandler_RejectsUnknownKind(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	u := seedUser(t, "ledger", "user")
	g := seedGoal(t, u.ID, "Sleep better", goal.CategorySleep)

	r := asUser(u.ID)
	r.POST("/goals/:id/feedback", AppendFeedbackHandler())
	w := postJSON(r, "POST", "/goals/"+g.ID+"/feedback", FeedbackRequest{
		Kind:    goal.FeedbackKind("scolding"),
		Message: "do better",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown kind, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUnlockAchievementHandler_Idempotent(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	u := seedUser(t, "ledger", "user")
	g := seedGoal(t, u.ID, "Run", goal.CategoryExercise)

	r := asUser(u.ID)
	r.POST("/goals/:id/achievements", UnlockAchievementHandler())
	req := AchievementRequest{Name: "First Week", Description: "Seven days in a row"}

	for i := 0; i < 2; i++ {
		w := postJSON(r, "POST", "/goals/"+g.ID+"/achievements", req)
		if w.Code != http.StatusOK {
			t.Fatalf("unlock %d failed: %d: %s", i, w.Code, w.Body.String())
		}
	}

	stored, err := store.NewGoalStore(db.DB).ByID(u.ID, g.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if len(stored.Achievements) != 1 {
		t.Errorf("re-unlock should be a no-op, got %d achievements", len(stored.Achievements))
	}
	if len(stored.AIFeedback) != 1 {
		t.Errorf("expected exactly one celebration entry, got %d", len(stored.AIFeedback))
	}
}

func TestSuggestAdjustmentHandler_LeavesTargetAlone(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	u := seedUser(t, "ledger", "user")
	g := seedGoal(t, u.ID, "Run", goal.CategoryExercise)

	r := asUser(u.ID)
	r.POST("/goals/:id/suggest-adjustment", SuggestAdjustmentHandler())
	w := postJSON(r, "POST", "/goals/"+g.ID+"/suggest-adjustment", SuggestAdjustmentRequest{
		NewTarget: "5 minutes daily",
		Reason:    "streak keeps breaking",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	stored, err := store.NewGoalStore(db.DB).ByID(u.ID, g.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if stored.Target != g.Target {
		t.Errorf("suggestion must not change the target, got %q", stored.Target)
	}
	if len(stored.Adjustments) != 0 {
		t.Errorf("suggestion must not write adjustment history, got %d", len(stored.Adjustments))
	}
	if len(stored.AIFeedback) != 1 || stored.AIFeedback[0].Kind != goal.FeedbackAdjustment {
		t.Fatalf("expected one adjustment-kind feedback entry, got %+v", stored.AIFeedback)
	}
	if stored.AIFeedback[0].Data["suggested_target"] != "5 minutes daily" {
		t.Errorf("suggested target missing from payload: %v", stored.AIFeedback[0].Data)
	}
}

func TestAdjustTargetHandler_AppliesChange(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	u := seedUser(t, "ledger", "user")
	g := seedGoal(t, u.ID, "Run", goal.CategoryExercise)

	r := asUser(u.ID)
	r.POST("/goals/:id/adjust", AdjustTargetHandler())
	w := postJSON(r, "POST", "/goals/"+g.ID+"/adjust", AdjustTargetRequest{
		NewTarget:   "5 minutes daily",
		Reason:      "accepted suggestion",
		AISuggested: true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	stored, err := store.NewGoalStore(db.DB).ByID(u.ID, g.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if stored.Target != "5 minutes daily" {
		t.Errorf("target not applied: %q", stored.Target)
	}
	if stored.Status != goal.StatusAdjusted {
		t.Errorf("status should be adjusted, got %s", stored.Status)
	}
	if len(stored.Adjustments) != 1 {
		t.Fatalf("expected 1 adjustment record, got %d", len(stored.Adjustments))
	}
	adj := stored.Adjustments[0]
	if adj.OldTarget != g.Target || adj.NewTarget != "5 minutes daily" || !adj.AISuggested {
		t.Errorf("adjustment record wrong: %+v", adj)
	}
}
