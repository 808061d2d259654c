package main

import (
	"fmt"
	"log"
	"os"

	"plaindoc/internal/config"
	"plaindoc/internal/handler"
	"plaindoc/internal/logger"
	"plaindoc/internal/router"
	"plaindoc/internal/service"
	"plaindoc/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	diag := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	// Initialize services
	uploadSvc := service.NewUploadService(storage.NewUploader, diag)

	// Initialize handlers
	uploadH := handler.NewUploadHandler(uploadSvc, &cfg.Upload)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(uploadH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
