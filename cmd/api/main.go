// The api binary runs the bookstore HTTP server: authentication and session
// management, the book catalogue, and ordering, backed by MongoDB with an
// optional Redis session registry.
//
// @title        BookHaven Bookstore API
// @version      1.0
// @description  Authentication, catalogue and ordering service.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	_ "github.com/bookhaven/bookstore-api/docs"
	"github.com/bookhaven/bookstore-api/internal/api"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/infrastructure/config"
	mongodb "github.com/bookhaven/bookstore-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookhaven/bookstore-api/internal/infrastructure/db/redis"
	"github.com/bookhaven/bookstore-api/internal/infrastructure/email"
	"github.com/bookhaven/bookstore-api/internal/infrastructure/session"
	"github.com/bookhaven/bookstore-api/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "bookstore-api",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongodb.Disconnect(shutdownCtx, client); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// Sessions default to in-process memory; redis makes them shared
	// across instances and survivable across restarts.
	var (
		rdb      *redis.Client
		sessions ports.SessionRegistry
	)
	switch cfg.SessionBackend {
	case "redis":
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessions = redisdb.NewSessionRegistry(rdb, cfg.TokenTTL)
	case "memory":
		sessions = session.NewMemoryRegistry()
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}

	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = email.NewSMTPMailer(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			return fmt.Errorf("smtp mailer: %w", err)
		}
	} else {
		mailer = email.NewLogMailer(logger.Component("mailer"))
	}

	e := api.NewRouter(cfg, db, rdb, sessions, mailer)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
