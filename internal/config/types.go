package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port          string
	SheetURL      string
	CacheTTL      time.Duration
	DBName        string
	MigrationsDir string
	Turso         TursoConfig
	Slack         SlackConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// SlackEnabled reports whether the Slack notifier should be wired up.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}
