package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SSm0k9y/coffee-break/internal/app"
	"github.com/SSm0k9y/coffee-break/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := app.LoadConfig()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, cleanup, err := app.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("init", zap.Error(err))
	}
	defer cleanup()

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := srv.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
