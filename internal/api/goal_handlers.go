package api

import (
	"errors"
	"net/http"
	"time"

	"mindtrack/internal/db"
	"mindtrack/internal/goal"
	"mindtrack/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type CreateGoalRequest struct {
	Title       string         `json:"title"`
	Category    goal.Category  `json:"category"`
	Description string         `json:"description"`
	Target      string         `json:"target"`
	TargetValue *float64       `json:"target_value"`
	TargetUnit  string         `json:"target_unit"`
	Timeframe   goal.Timeframe `json:"timeframe"`
	Deadline    *time.Time     `json:"deadline"`
	Priority    goal.Priority  `json:"priority"`
}

type UpdateGoalRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Target      *string         `json:"target"`
	TargetValue *float64        `json:"target_value"`
	TargetUnit  *string         `json:"target_unit"`
	Deadline    *time.Time      `json:"deadline"`
	Priority    *goal.Priority  `json:"priority"`
	Status      *goal.Status    `json:"status"`
	Reminders   *goal.Reminders `json:"reminders"`
}

func currentUserID(c *gin.Context) uint {
	userId, _ := c.Get("userId")
	return userId.(uint)
}

func goalNotFound(c *gin.Context, err error) bool {
	if errors.Is(err, store.ErrGoalNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
		return true
	}
	return false
}

func CreateGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if req.Title == "" || req.Target == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Title and target are required"}})
			return
		}
		if !req.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown category"}})
			return
		}
		if req.Timeframe == "" {
			req.Timeframe = goal.TimeframeDaily
		}
		if !req.Timeframe.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown timeframe"}})
			return
		}
		if req.Priority == "" {
			req.Priority = goal.PriorityMedium
		}
		if !req.Priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown priority"}})
			return
		}

		g := goal.Goal{
			UserID:      currentUserID(c),
			Title:       req.Title,
			Category:    req.Category,
			Description: req.Description,
			Target:      req.Target,
			TargetValue: req.TargetValue,
			TargetUnit:  req.TargetUnit,
			Timeframe:   req.Timeframe,
			Deadline:    req.Deadline,
			Priority:    req.Priority,
			Status:      goal.StatusActive,
		}
		s := store.NewGoalStore(db.DB)
		if err := s.Create(&g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to create goal"}})
			return
		}
		c.JSON(http.StatusCreated, g)
	}
}

func ListGoalsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := store.NewGoalStore(db.DB)
		goals, err := s.ByUser(currentUserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to list goals"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"goals": goals})
	}
}

func GetGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := store.NewGoalStore(db.DB)
		g, err := s.ByID(currentUserID(c), c.Param("id"))
		if err != nil {
			if goalNotFound(c, err) {
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load goal"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

func UpdateGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateGoalRequest
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

		if req.Title != nil {
			g.Title = *req.Title
		}
		if req.Description != nil {
			g.Description = *req.Description
		}
		if req.Target != nil {
			g.Target = *req.Target
		}
		if req.TargetValue != nil {
			g.TargetValue = req.TargetValue
		}
		if req.TargetUnit != nil {
			g.TargetUnit = *req.TargetUnit
		}
		if req.Deadline != nil {
			g.Deadline = req.Deadline
		}
		if req.Priority != nil {
			if !req.Priority.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown priority"}})
				return
			}
			g.Priority = *req.Priority
		}
		if req.Status != nil {
			if !req.Status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown status"}})
				return
			}
			g.Status = *req.Status
		}
		if req.Reminders != nil {
			g.Reminders = datatypes.NewJSONType(*req.Reminders)
		}

		if err := s.Save(g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

func DeleteGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := store.NewGoalStore(db.DB)
		if err := s.Delete(currentUserID(c), c.Param("id")); err != nil {
			if goalNotFound(c, err) {
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to delete goal"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
