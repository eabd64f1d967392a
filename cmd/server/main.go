package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"farma-vida/internal/assistant"
	"farma-vida/internal/config"
	"farma-vida/internal/db"
	httpserver "farma-vida/internal/http"
	"farma-vida/internal/llm"
	"farma-vida/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	// Verify connection before serving traffic.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		zlog.Fatal("failed to ping database", zap.Error(err))
	}
	if err := db.Migrate(context.Background(), dbConn); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	repo := db.NewStatsRepository(dbConn, cfg.LowStockThreshold)
	llmClient := llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.LLMTimeout)
	if cfg.OpenAIKey == "" {
		zlog.Warn("OPENAI_API_KEY not set; assistant queries will fail closed")
	}
	svc := assistant.NewService(repo, llmClient, zlog)
	srv := httpserver.NewServer(svc, repo, dbConn, zlog)

	addr := ":" + cfg.Port
	zlog.Info("listening", zap.String("addr", addr), zap.String("model", cfg.OpenAIModel))
	if err := http.ListenAndServe(addr, srv); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
