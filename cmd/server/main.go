package main

import (
	"fmt"
	"log"
	"net/http"

	"cargoscan/internal/acquire"
	"cargoscan/internal/classify"
	"cargoscan/internal/config"
	"cargoscan/internal/extract"
	"cargoscan/internal/handler"
	"cargoscan/internal/router"
	"cargoscan/internal/service"
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

	// Initialize pipeline stages
	acquirer := acquire.NewAcquirer(cfg.OCR)
	classifier, err := classify.NewFromConfig(cfg.Classify)
	if err != nil {
		return fmt.Errorf("failed to load classification rules: %w", err)
	}
	engine := extract.NewEngine(cfg.Extract)

	// Initialize services
	extractionSvc := service.NewExtractionService(acquirer, classifier, engine, &cfg.Upload)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractionSvc)
	healthH := handler.NewHealthHandler(cfg.OCR)

	// Setup router
	r := router.Setup(cfg, extractH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
