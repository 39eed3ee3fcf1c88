package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okellojun/HackLab/internal/api"
	"github.com/okellojun/HackLab/internal/app/service"
	"github.com/okellojun/HackLab/internal/common/security"
	"github.com/okellojun/HackLab/internal/domain/repository"
	"github.com/okellojun/HackLab/internal/platform/config"
	"github.com/okellojun/HackLab/internal/platform/database"
	"github.com/okellojun/HackLab/internal/platform/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hacklab server:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. Logger
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Info("configuration loaded", zap.String("env", cfg.AppEnv), zap.String("port", cfg.APIPort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database
	db, err := database.Connect(ctx, cfg.DSN(), cfg.DBMaxConns, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, db, "up"); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	// 4. Repositories
	userRepo := repository.NewPgUserRepository(db)
	profileRepo := repository.NewPgProfileRepository(db)
	problemRepo := repository.NewPgProblemRepository(db)
	hackathonRepo := repository.NewPgHackathonRepository(db)
	activityRepo := repository.NewPgActivityRepository(db)
	statsRepo := repository.NewPgStatsRepository(db)

	// 5. Services
	tokens := security.NewTokenService([]byte(cfg.JWTSecret), nil)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	services := api.Services{
		Auth:      service.NewAuthService(userRepo, hasher, tokens, log),
		Profile:   service.NewProfileService(userRepo, profileRepo),
		Problem:   service.NewProblemService(problemRepo),
		Hackathon: service.NewHackathonService(hackathonRepo),
		Analytics: service.NewAnalyticsService(statsRepo, activityRepo),
		Dashboard: service.NewDashboardService(statsRepo, activityRepo, hackathonRepo),
	}

	// 6. Router & HTTP Server
	router := api.NewRouter(api.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: 60 * time.Second,
	}, services, tokens, db, log)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 70 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     zap.NewStdLog(log),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 7. Graceful Shutdown
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
