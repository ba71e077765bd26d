package store

import (
	"errors"
	"fmt"

	"mindtrack/internal/goal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalStore persists whole Goal aggregates. Every write is a full snapshot
// save; last-write-wins for concurrent submissions against the same goal, per
// the engine's overwrite-by-day semantics.
type GoalStore struct {
	db *gorm.DB
}

func NewGoalStore(db *gorm.DB) *GoalStore {
	return &GoalStore{db: db}
}

// Create inserts a new aggregate, assigning an id when missing
func (s *GoalStore) Create(g *goal.Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if err := s.db.Create(g).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// ByID loads one aggregate scoped to its owner
func (s *GoalStore) ByID(userID uint, goalID string) (*goal.Goal, error) {
	var g goal.Goal
	err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}
	return &g, nil
}

// ByUser loads all aggregates a user owns, most recently updated first
func (s *GoalStore) ByUser(userID uint) ([]goal.Goal, error) {
	var goals []goal.Goal
	if err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// FirstActiveByCategory finds the user's first active goal in a category;
// the daily-progress endpoint uses it to route activity submissions.
func (s *GoalStore) FirstActiveByCategory(userID uint, category goal.Category) (*goal.Goal, error) {
	var g goal.Goal
	err := s.db.Where("user_id = ? AND category = ? AND status = ?",
		userID, category, goal.StatusActive).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load goal by category: %w", err)
	}
	return &g, nil
}

// Save writes the full aggregate snapshot back
func (s *GoalStore) Save(g *goal.Goal) error {
	if err := s.db.Save(g).Error; err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// Delete removes an aggregate, scoped to its owner
func (s *GoalStore) Delete(userID uint, goalID string) error {
	result := s.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&goal.Goal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
