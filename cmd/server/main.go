package main

import (
	"context"
	"os"

	"github.com/luminadental/lumina/internal/config"
	"github.com/luminadental/lumina/internal/logging"
	"github.com/luminadental/lumina/internal/server"
	"github.com/luminadental/lumina/internal/service"
	"github.com/luminadental/lumina/internal/site"
	"github.com/luminadental/lumina/internal/telemetry"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Export traces only when an OTLP endpoint is configured
	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.Init(context.Background(), cfg.OTLPEndpoint)
		if err != nil {
			logger.Error("Failed to initialize tracing: %v", err)
			os.Exit(1)
		}
		defer shutdown(context.Background())
		logger.Info("Tracing enabled, exporting to %s", cfg.OTLPEndpoint)
	}

	var mail service.MailService
	if cfg.MailConfigured() {
		mail, err = service.NewMailService(cfg)
		if err != nil {
			logger.Error("Failed to initialize mail service: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("Mail credentials not configured; contact submissions will fail to dispatch")
		mail = service.UnconfiguredMailService()
	}

	siteCfg := site.DefaultSiteConfig()
	contactService := service.NewContactService(mail, cfg, siteCfg)

	srv := server.NewServer(cfg, contactService, siteCfg)
	defer srv.Close()

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Run(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
