package goal

import (
	"testing"
	"time"
)

func TestWeekStart_SundayAnchor(t *testing.T) {
	// 2024-03-20 is a Wednesday; its week starts Sunday 2024-03-17
	wed := time.Date(2024, 3, 20, 14, 0, 0, 0, time.UTC)
	want := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(wed); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	// A Sunday is its own week start
	if got := WeekStart(want.Add(5 * time.Hour)); !got.Equal(want) {
		t.Errorf("sunday should anchor itself, got %v", got)
	}
}

func TestWeeklyCompletionRate(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	g := testGoal()
	g.DailyLogs = []DailyLog{
		completedLog(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)),
		{Date: time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC), Completed: false},
		completedLog(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)),
		// previous week, must be excluded
		completedLog(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	}

	if rate := WeeklyCompletionRate(g, now); rate != 67 {
		t.Errorf("expected round(2/3*100) = 67, got %d", rate)
	}
}

func TestWeeklyCompletionRate_NoLogsThisWeek(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	g := testGoal()
	g.DailyLogs = []DailyLog{completedLog(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))}

	if rate := WeeklyCompletionRate(g, now); rate != 0 {
		t.Errorf("expected 0 for an empty week, got %d", rate)
	}
}

func TestBuildWeeklySummary(t *testing.T) {
	weekStart := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	g := testGoal()
	g.DailyLogs = []DailyLog{
		{Date: weekStart, Completed: true, Mood: ptrInt(6), Value: ptrFloat(10), Challenges: []string{"time"}},
		{Date: weekStart.AddDate(0, 0, 1), Completed: false, Mood: ptrInt(4)},
		{Date: weekStart.AddDate(0, 0, 2), Completed: true, Value: ptrFloat(15)},
		// outside the week
		{Date: weekStart.AddDate(0, 0, 9), Completed: true},
	}

	s := BuildWeeklySummary(g, weekStart)

	if !s.WeekStart.Equal(weekStart) || !s.WeekEnd.Equal(weekStart.AddDate(0, 0, 6)) {
		t.Errorf("week bounds wrong: %v .. %v", s.WeekStart, s.WeekEnd)
	}
	if s.CompletionRate != 67 {
		t.Errorf("expected completion 67, got %d", s.CompletionRate)
	}
	if s.AverageMood != 5 {
		t.Errorf("expected average mood 5, got %v", s.AverageMood)
	}
	if s.TotalValue != 25 {
		t.Errorf("expected total value 25, got %v", s.TotalValue)
	}
	if len(s.Challenges) != 1 || s.Challenges[0] != "time" {
		t.Errorf("challenges not rolled up: %v", s.Challenges)
	}
}
