package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shelfcheck/backend/config"
	httpDelivery "github.com/shelfcheck/backend/internal/delivery/http"
	"github.com/shelfcheck/backend/internal/domain"
	"github.com/shelfcheck/backend/internal/infrastructure/store"
)

func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShelfCheck Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store: %s (%s)", cfg.Store.Type, cfg.Store.Path)

	// The server is a read-only consumer of the records the batch driver
	// persisted; the file store is what joins the two processes.
	var records domain.RecordRepository
	switch cfg.Store.Type {
	case "file":
		records = store.NewFileStore(cfg.Store.Path)
	default:
		records = store.NewMemoryStore()
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(records)

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
