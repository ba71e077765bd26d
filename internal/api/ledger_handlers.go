package api

import (
	"net/http"
	"time"

	"mindtrack/internal/db"
	"mindtrack/internal/goal"
	"mindtrack/internal/store"

	"github.com/gin-gonic/gin"
)

type FeedbackRequest struct {
	Kind    goal.FeedbackKind `json:"kind"`
	Message string            `json:"message"`
	Data    map[string]any    `json:"data"`
}

// AppendFeedbackHandler records one feedback entry on a goal's ledger. Message
// and payload are stored verbatim.
func AppendFeedbackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if !req.Kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown feedback kind"}})
			return
		}
		if req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Message is required"}})
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

		goal.AppendFeedback(g, req.Kind, req.Message, req.Data, time.Now().UTC())

		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

type AchievementRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// UnlockAchievementHandler grants a badge; unlocking a held badge is a no-op
func UnlockAchievementHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AchievementRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Achievement name is required"}})
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

		goal.UnlockAchievement(g, goal.Achievement{
			Name:        req.Name,
			Description: req.Description,
			Icon:        req.Icon,
		}, time.Now().UTC())

		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

type SuggestAdjustmentRequest struct {
	NewTarget string `json:"new_target"`
	Reason    string `json:"reason"`
}

// SuggestAdjustmentHandler records an adjustment suggestion on the feedback
// ledger without touching the target itself.
func SuggestAdjustmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SuggestAdjustmentRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.NewTarget == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "New target is required"}})
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

		goal.SuggestAdjustment(g, req.NewTarget, req.Reason, time.Now().UTC())

		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

type AdjustTargetRequest struct {
	NewTarget   string `json:"new_target"`
	Reason      string `json:"reason"`
	AISuggested bool   `json:"ai_suggested"`
}

// AdjustTargetHandler applies a target change: the old and new targets go into
// the adjustments history and the goal moves to the adjusted status.
func AdjustTargetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdjustTargetRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.NewTarget == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "New target is required"}})
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

		g.Adjustments = append(g.Adjustments, goal.Adjustment{
			Date:        time.Now().UTC(),
			OldTarget:   g.Target,
			NewTarget:   req.NewTarget,
			Reason:      req.Reason,
			AISuggested: req.AISuggested,
		})
		g.Target = req.NewTarget
		g.Status = goal.StatusAdjusted

		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}
