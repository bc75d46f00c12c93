package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shelfcheck/backend/config"
	"github.com/shelfcheck/backend/internal/domain"
	"github.com/shelfcheck/backend/internal/infrastructure/capture"
	"github.com/shelfcheck/backend/internal/infrastructure/store"
	"github.com/shelfcheck/backend/internal/infrastructure/vision"
	"github.com/shelfcheck/backend/internal/usecase"
)

func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShelfCheck reconciliation run")
	log.Printf("Captures: %s", cfg.Batch.CaptureDir)
	log.Printf("Entries: %s", cfg.Batch.EntriesFile)
	log.Printf("Store: %s (%s)", cfg.Store.Type, cfg.Store.Path)

	// Cancel the batch on SIGINT/SIGTERM; in-flight pairs stop at the next
	// collaborator call.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure dependencies
	source := capture.NewDirectorySource(cfg.Batch.CaptureDir)

	visionClient := vision.NewClient(vision.ClientConfig{
		APIKey:             cfg.Vision.APIKey,
		BaseURL:            cfg.Vision.BaseURL,
		ExtractModel:       cfg.Vision.ExtractModel,
		CompareModel:       cfg.Vision.CompareModel,
		RequestsPerMinute:  cfg.Vision.RequestsPerMinute,
		EnableDebugLogging: cfg.Batch.DebugLogging,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		visionClient.SetDebug(true)
	}

	var records domain.RecordRepository
	switch cfg.Store.Type {
	case "file":
		records = store.NewFileStore(cfg.Store.Path)
	default:
		records = store.NewMemoryStore()
	}

	// Initialize usecase layer
	verdicts := usecase.NewVerdictService(usecase.VerdictConfig{
		PriceTolerance:     cfg.Batch.PriceTolerance,
		EnableDebugLogging: cfg.Batch.DebugLogging,
	})

	reconciler := usecase.NewReconcileService(
		source,
		visionClient,
		visionClient,
		verdicts,
		records,
		usecase.ReconcileConfig{
			Workers:            cfg.Batch.Workers,
			EnableDebugLogging: cfg.Batch.DebugLogging,
		},
	)

	entries, err := usecase.LoadUserEntries(cfg.Batch.EntriesFile)
	if err != nil {
		log.Fatalf("Failed to load user entries: %v", err)
	}

	summary, err := reconciler.Run(ctx, entries)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	log.Printf("All pairs processed: total=%d approved=%d disapproved=%d failed=%d",
		summary.Total, summary.Approved, summary.Disapproved, summary.Failed)
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
