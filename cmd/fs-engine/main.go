package main

import (
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/engine/streamtracker"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.Println("Starting fs-engine...")

	// 1. Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Initialize a new StreamTracker
	tracker, err := streamtracker.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create stream tracker: %v", err)
	}

	// 3. Start the tracker
	tracker.Start()

	// 4. Wait for a shutdown signal for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Println("Shutdown signal received, stopping tracker...")
	tracker.Stop()
	log.Println("Shutdown complete.")
}
