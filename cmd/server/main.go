package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/config"
	"github.com/heishia/bluroutine/internal/handler"
	"github.com/heishia/bluroutine/internal/httpserver"
	"github.com/heishia/bluroutine/internal/repository"
	"github.com/heishia/bluroutine/internal/service"
	"github.com/heishia/bluroutine/pkg/circuitbreaker"
	"github.com/heishia/bluroutine/pkg/logger"
	"github.com/heishia/bluroutine/pkg/mq"
	"github.com/heishia/bluroutine/pkg/redis"
)

var CLI struct {
	Config string `help:"Config file path." type:"path" default:"config.yaml"`
	Env    string `help:"Config overlay name (reads config.<env>.yaml)." env:"CONFIG_ENV"`
	Seed   bool   `help:"Seed the demo account, routines and activities."`
	Debug  bool   `help:"Run gin in debug mode."`
}

// publisher is what the services and the readiness probe need from the broker.
type publisher interface {
	service.EventPublisher
	httpserver.Broker
}

func main() {
	kong.Parse(&CLI,
		kong.Name("bluroutine"),
		kong.Description("Bluroutine routine and day-session backend"),
		kong.UsageOnError(),
	)

	// 1. Load config
	cfg, err := config.Load(CLI.Config, CLI.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !CLI.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Store
	store := repository.NewMemoryStore()
	if cfg.Seed.DemoData || CLI.Seed {
		if err := store.SeedDemoData(); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
		log.Info("Demo data seeded", zap.String("email", repository.DemoEmail))
	}

	// 3. Optional RabbitMQ publisher
	var events publisher = mq.NopPublisher{}
	if cfg.MQ.URL != "" {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatal("Failed to init MQ publisher", zap.Error(err))
		}
		defer p.Close()
		events = mq.NewGuardedPublisher(p, circuitbreaker.DefaultConfig())
		log.Info("MQ publisher connected", zap.String("exchange", cfg.MQ.Exchange))
	}

	// 4. Optional redis login throttle
	var limiter service.LoginLimiter
	if rdb := redis.NewRedisClient(cfg.Redis); rdb != nil && cfg.Auth.MaxLoginFailures > 0 {
		defer rdb.Close()
		limiter = service.NewRedisLoginLimiter(rdb, cfg.Auth.MaxLoginFailures, cfg.Auth.LockoutWindow, log)
		log.Info("Login throttling enabled",
			zap.String("redis_addr", cfg.Redis.Addr),
			zap.Int("max_failures", cfg.Auth.MaxLoginFailures),
			zap.Duration("window", cfg.Auth.LockoutWindow),
		)
	}

	// 5. Repositories and services
	authService := service.NewAuthService(repository.NewUserRepository(store), cfg.JWT, limiter, events, log)
	routineService := service.NewRoutineService(repository.NewRoutineRepository(store), events, log)
	activityService := service.NewActivityService(repository.NewActivityRepository(store), events, log)
	progressService := service.NewProgressService(repository.NewProgressRepository(store), events, log)
	sessionService := service.NewDaySessionService(repository.NewDaySessionRepository(store), events, log)

	// 6. Router
	router, err := httpserver.NewRouter(
		handler.NewAuthHandler(authService, log),
		handler.NewRoutineHandler(routineService, log),
		handler.NewActivityHandler(activityService, log),
		handler.NewProgressHandler(progressService, log),
		handler.NewDaySessionHandler(sessionService, log),
		authService,
		events,
		cfg.CORS,
		log,
	)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 优雅退出处理
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}
}
