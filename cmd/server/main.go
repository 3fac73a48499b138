package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"mrpending/internal/config"
	"mrpending/internal/handler"
	"mrpending/internal/logger"
	"mrpending/internal/parser"
	_ "mrpending/internal/parser/gemini"
	"mrpending/internal/router"
	"mrpending/internal/service"
	"mrpending/internal/upload"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	oracle, err := parser.NewExtractor(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	gateway, err := parser.NewGateway(oracle, logger.WithComponent("gateway"))
	if err != nil {
		return fmt.Errorf("failed to create extraction gateway: %w", err)
	}

	guard := upload.NewGuard(cfg.Upload.MaxFileSizeBytes())
	extractionSvc := service.NewExtractionService(guard, gateway, cfg.Share.WhatsAppBaseURL, logger.WithComponent("extraction"))

	reportH := handler.NewReportHandler(extractionSvc)
	healthH := handler.NewHealthHandler(cfg.Parser.APIKey != "")

	r := router.Setup(reportH, healthH, cfg.CORS.AllowedOrigins)

	log.Info().Str("port", cfg.Server.Port).Str("provider", cfg.Parser.Provider).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
