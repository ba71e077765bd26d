package api

import (
	"errors"
	"net/http"
	"time"

	"mindtrack/internal/ai"
	"mindtrack/internal/dailyfocus"
	"mindtrack/internal/db"
	"mindtrack/internal/goal"
	"mindtrack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LogActivityHandler records today's activity against a goal. Submitting twice
// on the same day overwrites that day's log wholesale.
func LogActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var entry goal.LogEntry
		if err := c.ShouldBindJSON(&entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		s := store.NewGoalStore(db.DB)
		g, err := s.ByID(currentUserID(c), c.Param("id"))
		if err != nil {
			if goalNotFound(c, err) {
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load goal"}})
			return
		}

		goal.RecordDailyActivity(g, entry, time.Now().UTC())

		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

type DailyProgressRequest struct {
	Category goal.Category       `json:"category"`
	Activity dailyfocus.Activity `json:"activity"`
}

// DailyProgressHandler marks one daily focus activity done and, when the user
// has an active goal in the matching category, records a completed log for it.
func DailyProgressHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DailyProgressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if !req.Activity.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown activity"}})
			return
		}
		if !req.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown category"}})
			return
		}

		userID := currentUserID(c)
		now := time.Now().UTC()

		checklist, err := dailyfocus.MarkCompleted(c.Request.Context(), rdb, userID, req.Activity, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to update daily focus"}})
			return
		}

		s := store.NewGoalStore(db.DB)
		g, err := s.FirstActiveByCategory(userID, req.Category)
		if err != nil {
			if errors.Is(err, store.ErrGoalNotFound) {
				// Daily focus still counts even without a matching goal
				c.JSON(http.StatusOK, gin.H{"daily_focus": checklist, "goal": nil})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load goal"}})
			return
		}

		goal.RecordDailyActivity(g, goal.LogEntry{Completed: true}, now)
		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"daily_focus": checklist, "goal": g})
	}
}

// DailyFocusHandler returns today's checklist, resetting any stale state
func DailyFocusHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		checklist, err := dailyfocus.LoadOrReset(c.Request.Context(), rdb, currentUserID(c), time.Now().UTC())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load daily focus"}})
			return
		}
		c.JSON(http.StatusOK, checklist)
	}
}

type CheckinRequest struct {
	Responses map[string]string `json:"responses"`
}

// CheckinHandler sends the goal state plus the user's check-in answers to the
// feedback service and records whatever it returns on the goal's ledger.
func CheckinHandler(aiClient *ai.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		s := store.NewGoalStore(db.DB)
		g, err := s.ByID(currentUserID(c), c.Param("id"))
		if err != nil {
			if goalNotFound(c, err) {
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load goal"}})
			return
		}

		if !aiClient.Enabled() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "Feedback service not configured"}})
			return
		}

		fb, err := aiClient.GenerateFeedback(c.Request.Context(), ai.CheckinContext{
			Title:         g.Title,
			Category:      g.Category,
			Target:        g.Target,
			Progress:      g.Progress,
			CurrentStreak: g.CurrentStreak,
			Responses:     req.Responses,
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": gin.H{"message": "Feedback service error"}})
			return
		}

		goal.AppendFeedback(g, fb.Kind, fb.Message, fb.Data, time.Now().UTC())
		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedback": fb, "goal": g})
	}
}
