package main

import (
	"fmt"
	"log"
	"os"

	"github.com/taglens/backend/config"
	httpDelivery "github.com/taglens/backend/internal/delivery/http"
	"github.com/taglens/backend/internal/infrastructure/cache"
	"github.com/taglens/backend/internal/infrastructure/ocrspace"
	"github.com/taglens/backend/internal/infrastructure/store"
	"github.com/taglens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting TagLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	billStore := store.NewMemoryStore()

	ocrClient := ocrspace.NewClient(
		cfg.OCRSpace.APIKey,
		cfg.OCRSpace.BaseURL,
		cfg.OCRSpace.Engine,
		cfg.OCRSpace.Language,
		cfg.OCRSpace.Timeout,
	)

	// Enable debug mode in development environment
	debug := cfg.Server.Environment == "development"
	if debug {
		ocrClient.SetDebug(true)
		log.Printf("OCR client debug mode enabled")
	}

	if cfg.OCRSpace.APIKey == "helloworld" {
		log.Printf("WARNING: using the OCR.space demo API key - heavily rate limited, set TAGLENS_OCRSPACE_API_KEY")
	} else {
		log.Printf("OCR.space configured: %s (engine %d)", cfg.OCRSpace.BaseURL, cfg.OCRSpace.Engine)
	}

	// Initialize usecase layer
	extractionService := usecase.NewExtractionService(
		memoryCache,
		ocrClient,
		usecase.ExtractionServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)

	billingService := usecase.NewBillingService(billStore, usecase.BillingServiceConfig{
		ListLimit: cfg.Store.ListLimit,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(extractionService, billingService, billStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
