package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/shiji-energy/internal/domain/auth"
	"github.com/yanqian/shiji-energy/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
		errorHandlingMiddleware(logger),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handler.Register)
			authGroup.POST("/login", handler.Login)
			authGroup.POST("/refresh", handler.Refresh)
			authGroup.GET("/me", authMiddleware(authSvc), handler.Me)
		}

		profileGroup := api.Group("/profile", authMiddleware(authSvc))
		{
			profileGroup.GET("", handler.GetProfile)
			profileGroup.PUT("/birth", handler.SetBirthInfo)
			profileGroup.DELETE("/birth", handler.ClearBirthInfo)
			profileGroup.POST("/rules", handler.AddRule)
			profileGroup.DELETE("/rules/:id", handler.RemoveRule)
			profileGroup.PUT("/weight", handler.SetWeight)
			profileGroup.POST("/activities", handler.AddActivity)
			profileGroup.DELETE("/activities/:id", handler.RemoveActivity)
			profileGroup.POST("/goals", handler.AddGoal)
			profileGroup.PUT("/goals/:id/toggle", handler.ToggleGoal)
			profileGroup.DELETE("/goals/:id", handler.RemoveGoal)
		}

		energyGroup := api.Group("/energy", authMiddleware(authSvc))
		{
			energyGroup.GET("/hours", handler.DayProfile)
			energyGroup.GET("/hours/:hour", handler.HourDetail)
			energyGroup.GET("/daily", handler.DailyFortune)
			energyGroup.GET("/weekly", handler.WeeklyTrend)
			energyGroup.GET("/recommend", handler.RecommendForAction)
			energyGroup.GET("/actions", handler.ActionLibrary)
		}

		api.GET("/almanac", handler.AlmanacOverview)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
