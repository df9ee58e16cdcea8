package main

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tractorclub/levelboard/internal/archive"
	"github.com/tractorclub/levelboard/internal/config"
	"github.com/tractorclub/levelboard/internal/database"
	"github.com/tractorclub/levelboard/internal/sheets"
)

// Seeds the snapshot archive from the published game sheet so the server
// has a durable fallback before its first successful fetch.
func main() {
	log.Info("Starting snapshot seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := archive.New(db)
	client := sheets.NewClient(cfg.SheetURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	games, err := client.FetchGames(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch game sheet: %s", err)
	}
	log.Info("Fetched game sheet", "games", len(games))

	if err := store.SaveSnapshot(games); err != nil {
		log.Fatalf("Failed to save snapshot: %s", err)
	}
	log.Info("Snapshot saved.", "games", len(games))
}
