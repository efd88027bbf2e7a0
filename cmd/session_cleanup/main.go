package main

import (
	"context"
	"log"

	"kitchenadmin/internal/config"
	"kitchenadmin/internal/database"
	"kitchenadmin/internal/repository"
)

// Run from cron to drop expired sessions from the store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	removed, err := repository.NewSessionRepository(db).DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("session cleanup failed: %v", err)
	}

	log.Printf("session cleanup completed: sessions=%d", removed)
}
