package api

import (
	"mindtrack/internal/ai"
	"mindtrack/internal/auth"
	"mindtrack/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRouter wires the full HTTP surface. Everything under /api/goals
// requires an authenticated session.
func SetupRouter(cfg *config.Config, rdb *redis.Client, aiClient *ai.Client) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/config", configHandler(cfg))
		api.POST("/setup", SetupHandler())
		api.POST("/auth/login", LoginHandler(cfg, rdb))
		api.POST("/auth/logout", auth.AuthMiddleware(cfg, rdb, false), LogoutHandler(rdb))
		api.GET("/auth/me", auth.AuthMiddleware(cfg, rdb, false), MeHandler())

		goals := api.Group("/goals", auth.AuthMiddleware(cfg, rdb, false))
		{
			goals.POST("", CreateGoalHandler())
			goals.GET("", ListGoalsHandler())
			goals.GET("/analytics", AnalyticsHandler())
			goals.GET("/daily-focus", DailyFocusHandler(rdb))
			goals.POST("/update-daily-progress", DailyProgressHandler(rdb))

			goals.GET("/:id", GetGoalHandler())
			goals.PUT("/:id", UpdateGoalHandler())
			goals.DELETE("/:id", DeleteGoalHandler())
			goals.POST("/:id/log", LogActivityHandler())
			goals.POST("/:id/checkin", CheckinHandler(aiClient))
			goals.POST("/:id/feedback", AppendFeedbackHandler())
			goals.POST("/:id/achievements", UnlockAchievementHandler())
			goals.POST("/:id/suggest-adjustment", SuggestAdjustmentHandler())
			goals.POST("/:id/adjust", AdjustTargetHandler())
		}
	}

	return r
}
