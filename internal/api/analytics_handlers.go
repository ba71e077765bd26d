package api

import (
	"net/http"
	"time"

	"mindtrack/internal/db"
	"mindtrack/internal/goal"
	"mindtrack/internal/store"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler projects all of the user's goals into dashboard summaries
func AnalyticsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		timeRange := goal.TimeRange(c.DefaultQuery("range", string(goal.RangeWeek)))
		if !timeRange.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown time range"}})
			return
		}
		s := store.NewGoalStore(db.DB)
		goals, err := s.ByUser(currentUserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to list goals"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"range": timeRange,
			"goals": goal.Project(goals, timeRange, time.Now().UTC()),
		})
	}
}
