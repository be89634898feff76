package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/internal/handler"
	"github.com/heishia/bluroutine/internal/service"
	"github.com/heishia/bluroutine/pkg/config"
)

// Broker reports whether the event publisher is still connected.
type Broker interface {
	IsConnected() bool
}

func NewRouter(
	authHandler *handler.AuthHandler,
	routineHandler *handler.RoutineHandler,
	activityHandler *handler.ActivityHandler,
	progressHandler *handler.ProgressHandler,
	sessionHandler *handler.DaySessionHandler,
	authService *service.AuthService,
	broker Broker,
	corsCfg config.CORSConfig,
	logger *zap.Logger,
) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), TraceMiddleware(), RequestLogMiddleware(logger))

	corsMiddleware, err := CORSMiddleware(corsCfg)
	if err != nil {
		return nil, err
	}
	if corsMiddleware != nil {
		r.Use(corsMiddleware)
	}

	// Health endpoints (放在最前面)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bluroutine Backend API", "status": "running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Bluroutine Backend is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	r.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/readyz", func(c *gin.Context) {
		if broker != nil && !broker.IsConnected() {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "mq_not_ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(authService))
	{
		auth.GET("/auth/me", authHandler.Me)

		auth.GET("/routines", routineHandler.List)
		auth.POST("/routines", routineHandler.Create)
		auth.PUT("/routines/reorder", routineHandler.Reorder)
		auth.PUT("/routines/:id", routineHandler.Update)
		auth.DELETE("/routines/:id", routineHandler.Delete)

		auth.GET("/activities", activityHandler.List)
		auth.POST("/activities", activityHandler.Create)
		auth.PUT("/activities/reorder", activityHandler.Reorder)
		auth.PUT("/activities/:id", activityHandler.Update)
		auth.DELETE("/activities/:id", activityHandler.Delete)

		auth.GET("/routine-progress", progressHandler.Get)
		auth.POST("/routine-progress", progressHandler.Toggle)
		auth.GET("/routine-progress/daily", progressHandler.Daily)
		auth.GET("/routine-progress/week", progressHandler.Weekly)

		auth.GET("/api/day-sessions/:date", sessionHandler.List)
		auth.POST("/api/day-sessions", sessionHandler.Create)
		auth.PUT("/api/day-sessions/bulk/:date", sessionHandler.ReplaceDay)
		auth.PUT("/api/day-sessions/:id", sessionHandler.Update)
		auth.DELETE("/api/day-sessions/:id", sessionHandler.Delete)
	}

	return r, nil
}
