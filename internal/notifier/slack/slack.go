package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/tractorclub/levelboard/internal/metrics"
	"github.com/tractorclub/levelboard/internal/notifier"
	"github.com/tractorclub/levelboard/internal/stats"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendLeaderboards posts the ranked tables for one deck partition.
func (s *Notifier) SendLeaderboards(decks int, boards map[stats.Metric][]stats.Entry, dryRun bool) error {
	msg := s.formatLeaderboards(decks, boards)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendPlayerStats posts one player's stat card.
func (s *Notifier) SendPlayerStats(player string, decks int, bundle stats.PlayerStats, dryRun bool) error {
	msg := s.formatPlayerStats(player, decks, bundle)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendPlayerNotFound posts a "no such player" notice.
func (s *Notifier) SendPlayerNotFound(query string, dryRun bool) error {
	msg := s.formatPlayerNotFound(query)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatLeaderboards creates the Slack message for the ranked tables using Block Kit.
func (s *Notifier) formatLeaderboards(decks int, boards map[stats.Metric][]stats.Entry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %d-Deck Leaderboards 🏆", decks), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	for _, metric := range stats.AllMetrics {
		entries, ok := boards[metric]
		if !ok {
			continue
		}

		var lines []string
		for _, entry := range entries {
			lines = append(lines, fmt.Sprintf("%d. %s — %.3f (n=%d)", entry.Rank, entry.Player, entry.Value, entry.SampleSize))
		}
		sectionText := fmt.Sprintf("*%s*\n%s", metric.DisplayName(), strings.Join(lines, "\n"))
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", sectionText, false, false), nil, nil))
	}

	if len(blocks) == 1 {
		noData := slack.NewTextBlockObject("plain_text", "No leaderboards yet — not enough games played.", false, false)
		blocks = append(blocks, slack.NewSectionBlock(noData, nil, nil))
	}

	contextText := slack.NewTextBlockObject("plain_text", "Minimum 5 games per metric.", false, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates the Slack message for one player's stat card.
func (s *Notifier) formatPlayerStats(player string, decks int, bundle stats.PlayerStats) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📊 Stats for %s (%d-deck games)", player, decks), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, metric := range stats.AllMetrics {
		line := bundle.Line(metric)
		lines = append(lines, fmt.Sprintf("• %s: %.2f (n=%d)", metric.DisplayName(), line.Value, line.SampleSize))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates the Slack message for an unknown player query.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := slack.NewTextBlockObject("plain_text", fmt.Sprintf("No player named %q in the game log.", query), false, false)
	return slack.NewBlockMessage(slack.NewSectionBlock(text, nil, nil))
}
