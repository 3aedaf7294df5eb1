package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mealtrack/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, log *logrus.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth endpoints are rate limited per IP to slow credential guessing
		auth := v1.Group("/auth")
		auth.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", handler.Login)
		}

		// Everything else requires a valid token
		authed := v1.Group("")
		authed.Use(AuthMiddleware(handler.auth))
		{
			meals := authed.Group("/meals")
			{
				meals.GET("", handler.ListMeals)
				meals.POST("", handler.CreateMeal)
				meals.PUT("/:id", handler.UpdateMeal)
				meals.DELETE("/:id", handler.DeleteMeal)
				meals.GET("/items", handler.ListItems)
				meals.GET("/defaults", handler.ItemDefaults)
				meals.POST("/preview", handler.PreviewMeal)
			}

			authed.GET("/goal", handler.GetGoal)
			authed.PUT("/goal", handler.SaveGoal)

			authed.GET("/summary", handler.Summary)
		}
	}

	return router
}
