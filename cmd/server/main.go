package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"farmbook/config"
	"farmbook/database"
	"farmbook/logging"
	"farmbook/pkg/ai"
	"farmbook/pkg/auth/session"
	"farmbook/server"
)

func main() {
	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2) DB + automigrate
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	// 3) Sessions
	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("SESSION_SECRET not set, using an ephemeral secret; sessions end on restart")
	}
	sessions := session.NewManager(secret, cfg.SessionTTL, cfg.SecureCookies)

	// 4) LLM (mock fallback)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	llm, err := ai.FromConfig(ctx, cfg)
	if err != nil {
		logger.Fatal("completion provider", zap.Error(err))
	}

	// 5) Echo
	e := server.New(cfg, db, llm, sessions, logger)

	go func() {
		logger.Info("listening",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.String("llm", cfg.Provider()),
		)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
