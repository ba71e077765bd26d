package dailyfocus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Activity is one of the three daily focus items the app tracks
type Activity string

const (
	ActivityChat    Activity = "chat"
	ActivityJournal Activity = "journal"
	ActivityEmotion Activity = "emotion"
)

func (a Activity) Valid() bool {
	return a == ActivityChat || a == ActivityJournal || a == ActivityEmotion
}

const (
	keyFmt = "dailyfocus:%d"
	// Entries survive at most two days so stale checklists clean themselves up
	cacheTTL = 48 * time.Hour
)

// Checklist is the per-user daily focus state. Any cached value that is not
// valid for today (missing, stale date, undecodable) collapses to a fresh
// default on read; there is no partial repair.
type Checklist struct {
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Completed   map[Activity]bool `json:"completed"`
	Total       int               `json:"total"`
}

func fresh(today time.Time) Checklist {
	return Checklist{
		Description: "Journal & Chat & Emotion",
		Date:        dayKey(today),
		Completed: map[Activity]bool{
			ActivityChat:    false,
			ActivityJournal: false,
			ActivityEmotion: false,
		},
		Total: 3,
	}
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CompletedCount counts finished activities
func (c Checklist) CompletedCount() int {
	n := 0
	for _, done := range c.Completed {
		if done {
			n++
		}
	}
	return n
}

// resolve classifies a cached payload as valid-for-today or not. It returns
// the checklist to use and whether it had to be reset.
func resolve(raw string, found bool, today time.Time) (Checklist, bool) {
	if !found {
		return fresh(today), true
	}
	var c Checklist
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return fresh(today), true
	}
	if c.Date != dayKey(today) || c.Completed == nil {
		return fresh(today), true
	}
	return c, false
}

// LoadOrReset reads the user's checklist, collapsing any non-valid-for-today
// state to a fresh default and writing the reset back.
func LoadOrReset(ctx context.Context, rdb *redis.Client, userID uint, today time.Time) (Checklist, error) {
	key := fmt.Sprintf(keyFmt, userID)

	raw, err := rdb.Get(ctx, key).Result()
	found := true
	if errors.Is(err, redis.Nil) {
		found = false
	} else if err != nil {
		return Checklist{}, fmt.Errorf("failed to read daily focus: %w", err)
	}

	c, wasReset := resolve(raw, found, today)
	if wasReset {
		if err := save(ctx, rdb, key, c); err != nil {
			return Checklist{}, err
		}
	}
	return c, nil
}

// MarkCompleted flags one activity as done for today and stores the result
func MarkCompleted(ctx context.Context, rdb *redis.Client, userID uint, activity Activity, today time.Time) (Checklist, error) {
	c, err := LoadOrReset(ctx, rdb, userID, today)
	if err != nil {
		return Checklist{}, err
	}
	c.Completed[activity] = true
	key := fmt.Sprintf(keyFmt, userID)
	if err := save(ctx, rdb, key, c); err != nil {
		return Checklist{}, err
	}
	return c, nil
}

func save(ctx context.Context, rdb *redis.Client, key string, c Checklist) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode daily focus: %w", err)
	}
	if err := rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store daily focus: %w", err)
	}
	return nil
}
