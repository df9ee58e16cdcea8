package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// The published league game log. Override with SHEET_URL.
const defaultSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vTKJVlAjGE_TRXpBGIvUR-po05xTuBCV2chd5B76hdvVItNpP1qMNgfLCVMBwj5gCsvjhDS9A87Kgoi/pub?gid=0&single=true&output=csv"

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cacheTTL := 5 * time.Minute
	if raw, ok := os.LookupEnv("CACHE_TTL"); ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Error: invalid CACHE_TTL %q: %s", raw, err)
		}
		cacheTTL = parsed
	}

	cfg := Config{
		Port:          getEnv("PORT", "7860"),
		SheetURL:      getEnv("SHEET_URL", defaultSheetURL),
		CacheTTL:      cacheTTL,
		DBName:        getEnv("DB_NAME", "levelboard.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
	}
	return cfg
}
