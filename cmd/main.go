package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/config"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/container"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/infrastructure/memory"
	pginfra "github.com/Naveenkumar-0814/PurityPropAI/internal/infrastructure/postgres"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/router"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	infra, err := openInfra(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialise infrastructure")
	}

	c, err := container.New(cfg, logger, infra)
	if err != nil {
		logger.WithError(err).Fatal("failed to build container")
	}
	defer c.Close()

	logger.WithFields(logrus.Fields{
		"store":       cfg.StoreDriver,
		"jwt_alg":     c.JWT.Algorithm(),
		"access_ttl":  cfg.AccessTTL.String(),
		"refresh_ttl": cfg.RefreshTTL.String(),
		"mail":        infra.Publisher != nil,
	}).Info("auth configured")

	r := router.NewEngine(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Infof("server starting on :%s", cfg.Port)
	if err := serve(srv, quit, 10*time.Second, logger); err != nil {
		logger.WithError(err).Error("server stopped")
		c.Close()
		os.Exit(1)
	}
	logger.Info("server exited properly")
}

// serve runs srv until it fails or a signal arrives on quit, then shuts it
// down within timeout. A listen failure is returned instead of exiting so
// the caller's cleanup still runs.
func serve(srv *http.Server, quit <-chan os.Signal, timeout time.Duration, logger *logrus.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
		return err
	}
	return nil
}

// openInfra opens the configured user and session stores and, when mail is
// enabled, the email queue publisher. A broker that cannot be reached
// disables welcome emails instead of stopping the server.
func openInfra(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (container.Infra, error) {
	var infra container.Infra

	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("using in-memory stores; users and sessions are lost on restart")
		infra.Users = memory.NewUserRepository()
		infra.Sessions = memory.NewSessionRepository()
	default:
		pool, err := pginfra.NewPool(ctx, cfg)
		if err != nil {
			return infra, err
		}
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return infra, err
		}
		infra.Pool = pool
		infra.Users = pginfra.NewUserRepository(pool)
		infra.Sessions = pginfra.NewSessionRepository(pool)
	}

	if cfg.MailSendEnabled && cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("email queue unavailable; welcome emails disabled")
		} else {
			infra.Publisher = pub
		}
	}
	return infra, nil
}
