package goal

import (
	"time"

	"gorm.io/datatypes"
)

// Category is the closed set of wellness areas a goal can belong to
type Category string

const (
	CategoryAnxiety     Category = "anxiety"
	CategorySleep       Category = "sleep"
	CategoryStress      Category = "stress"
	CategoryMood        Category = "mood"
	CategorySocial      Category = "social"
	CategoryMindfulness Category = "mindfulness"
	CategoryExercise    Category = "exercise"
	CategoryHabits      Category = "habits"
	CategoryCustom      Category = "custom"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryAnxiety, CategorySleep, CategoryStress, CategoryMood,
		CategorySocial, CategoryMindfulness, CategoryExercise,
		CategoryHabits, CategoryCustom:
		return true
	}
	return false
}

// Timeframe defines the cadence a goal is tracked against
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeCustom  Timeframe = "custom"
)

func (tf Timeframe) Valid() bool {
	switch tf {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeCustom:
		return true
	}
	return false
}

// Priority is the owner-assigned importance of a goal
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Status is the lifecycle state of a goal
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusAdjusted  Status = "adjusted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused, StatusAdjusted:
		return true
	}
	return false
}

// FeedbackKind classifies a system-generated feedback entry
type FeedbackKind string

const (
	FeedbackEncouragement FeedbackKind = "encouragement"
	FeedbackSuggestion    FeedbackKind = "suggestion"
	FeedbackReminder      FeedbackKind = "reminder"
	FeedbackAdjustment    FeedbackKind = "adjustment"
	FeedbackCelebration   FeedbackKind = "celebration"
	FeedbackResource      FeedbackKind = "resource"
	FeedbackSupport       FeedbackKind = "support"
)

func (k FeedbackKind) Valid() bool {
	switch k {
	case FeedbackEncouragement, FeedbackSuggestion, FeedbackReminder,
		FeedbackAdjustment, FeedbackCelebration, FeedbackResource,
		FeedbackSupport:
		return true
	}
	return false
}

// ResourceType classifies a suggested resource
type ResourceType string

const (
	ResourceArticle   ResourceType = "article"
	ResourceVideo     ResourceType = "video"
	ResourceExercise  ResourceType = "exercise"
	ResourceTechnique ResourceType = "technique"
	ResourceApp       ResourceType = "app"
)

// DailyLog is one calendar day's recorded activity against a goal.
// Date carries day granularity only (midnight UTC).
type DailyLog struct {
	Date       time.Time `json:"date"`
	Completed  bool      `json:"completed"`
	Value      *float64  `json:"value,omitempty"`
	Mood       *int      `json:"mood,omitempty"`
	Challenges []string  `json:"challenges,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Reflection string    `json:"reflection,omitempty"`
}

// WeeklySummary is a periodic rollup snapshot written by external jobs
type WeeklySummary struct {
	WeekStart      time.Time `json:"week_start"`
	WeekEnd        time.Time `json:"week_end"`
	CompletionRate int       `json:"completion_rate"`
	AverageMood    float64   `json:"average_mood"`
	TotalValue     float64   `json:"total_value"`
	Achievements   []string  `json:"achievements,omitempty"`
	Challenges     []string  `json:"challenges,omitempty"`
	AISuggestions  []string  `json:"ai_suggestions,omitempty"`
}

// Milestone is a target-date/target-value checkpoint
type Milestone struct {
	Description        string     `json:"description"`
	TargetDate         *time.Time `json:"target_date,omitempty"`
	TargetValue        *float64   `json:"target_value,omitempty"`
	Completed          bool       `json:"completed"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CelebrationMessage string     `json:"celebration_message,omitempty"`
}

// FeedbackEntry is one system-emitted feedback item. Message text and Data
// are produced by the AI collaborator; the engine treats both as opaque.
type FeedbackEntry struct {
	Date    time.Time      `json:"date"`
	Kind    FeedbackKind   `json:"type"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Adjustment records one change to the goal's target
type Adjustment struct {
	Date        time.Time `json:"date"`
	OldTarget   string    `json:"old_target"`
	NewTarget   string    `json:"new_target"`
	Reason      string    `json:"reason"`
	AISuggested bool      `json:"ai_suggested"`
}

// Achievement is an unlocked badge, unique by name per goal
type Achievement struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
	Icon        string    `json:"icon,omitempty"`
}

// Resource is an informational link suggested for the goal
type Resource struct {
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url"`
	Description string       `json:"description,omitempty"`
	RelevantFor string       `json:"relevant_for,omitempty"`
}

// Reminders is the notification preference subtree. Stored on the aggregate
// only; delivery is handled outside this service.
type Reminders struct {
	Enabled        bool     `json:"enabled"`
	Frequency      string   `json:"frequency"`
	Time           string   `json:"time,omitempty"`
	Message        string   `json:"message,omitempty"`
	CustomSchedule []string `json:"custom_schedule,omitempty"`
}

// Goal is the aggregate root. Scalar configuration and derived fields are
// plain columns; owned collections persist as JSON documents.
type Goal struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint     `gorm:"index:idx_goals_user_category;index:idx_goals_user_status;not null" json:"user_id"`
	Title       string   `gorm:"not null" json:"title"`
	Category    Category `gorm:"type:varchar(16);not null;index:idx_goals_user_category" json:"category"`
	Description string   `json:"description,omitempty"`
	Target      string   `gorm:"not null" json:"target"`
	TargetValue *float64 `json:"target_value,omitempty"`
	TargetUnit  string   `gorm:"size:32" json:"target_unit,omitempty"`

	Timeframe Timeframe  `gorm:"type:varchar(10);not null;default:'daily'" json:"timeframe"`
	Deadline  *time.Time `gorm:"index" json:"deadline,omitempty"`
	Priority  Priority   `gorm:"type:varchar(8);not null;default:'medium'" json:"priority"`

	Progress      int    `gorm:"not null;default:0" json:"progress"`
	Status        Status `gorm:"type:varchar(10);not null;default:'active';index:idx_goals_user_status" json:"status"`
	CurrentStreak int    `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int    `gorm:"not null;default:0" json:"longest_streak"`

	DailyLogs          datatypes.JSONSlice[DailyLog]      `gorm:"type:jsonb;not null;default:'[]'" json:"daily_logs"`
	WeeklySummaries    datatypes.JSONSlice[WeeklySummary] `gorm:"type:jsonb;not null;default:'[]'" json:"weekly_summaries"`
	Milestones         datatypes.JSONSlice[Milestone]     `gorm:"type:jsonb;not null;default:'[]'" json:"milestones"`
	AIFeedback         datatypes.JSONSlice[FeedbackEntry] `gorm:"type:jsonb;not null;default:'[]'" json:"ai_feedback"`
	Adjustments        datatypes.JSONSlice[Adjustment]    `gorm:"type:jsonb;not null;default:'[]'" json:"adjustments"`
	Achievements       datatypes.JSONSlice[Achievement]   `gorm:"type:jsonb;not null;default:'[]'" json:"achievements"`
	SuggestedResources datatypes.JSONSlice[Resource]      `gorm:"type:jsonb;not null;default:'[]'" json:"suggested_resources"`
	Reminders          datatypes.JSONType[Reminders]      `gorm:"type:jsonb" json:"reminders"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayOf truncates t to midnight UTC, the day granularity all log dates use
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CompletedLogCount counts all-time completed daily logs
func (g *Goal) CompletedLogCount() int {
	count := 0
	for _, l := range g.DailyLogs {
		if l.Completed {
			count++
		}
	}
	return count
}
