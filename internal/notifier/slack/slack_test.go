package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractorclub/levelboard/internal/metrics"
	"github.com/tractorclub/levelboard/internal/stats"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleBoards() map[stats.Metric][]stats.Entry {
	return map[stats.Metric][]stats.Entry{
		stats.MetricAttackingPoints: {
			{Rank: 1, Player: "Alice", Value: 82.5, SampleSize: 12},
			{Rank: 2, Player: "Bob", Value: 61.25, SampleSize: 8},
		},
		stats.MetricLevelChange: {
			{Rank: 1, Player: "Alice", Value: 0.75, SampleSize: 20},
		},
	}
}

func TestSendLeaderboards_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	err := notifier.SendLeaderboards(2, sampleBoards(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendLeaderboards_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendLeaderboards(2, sampleBoards(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
}

func TestSendLeaderboards_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendLeaderboards(3, sampleBoards(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestFormatLeaderboards(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatLeaderboards(2, sampleBoards())
	// Header + two metric sections + context footer.
	require.Len(t, msg.Blocks.BlockSet, 4)
	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "2-Deck")
}

func TestFormatLeaderboardsEmpty(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatLeaderboards(3, nil)
	// Header + "no data" section + context footer.
	require.Len(t, msg.Blocks.BlockSet, 3)
}

func TestFormatPlayerStats(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	bundle := stats.PlayerStats{
		AttackingPoints: stats.StatLine{Value: 70, SampleSize: 10},
		LevelChange:     stats.StatLine{Value: 0.4, SampleSize: 15},
	}
	msg := notifier.formatPlayerStats("Alice", 2, bundle)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Avg. collected when attacking")
	assert.Contains(t, section.Text.Text, "n=10")
}
