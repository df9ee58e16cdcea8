package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractorclub/levelboard/internal/stats"
	"github.com/tractorclub/levelboard/internal/tractor"
)

func TestInteractionStatsSplit(t *testing.T) {
	var games []tractor.GameRecord
	// P and T attack together against O's side: 5 wins, then 3 losses.
	games = append(games, repeatGames([]string{"P", "T"}, []string{"O", "Q", "R", "S"}, 80, "A+2", 5)...)
	games = append(games, repeatGames([]string{"P", "T"}, []string{"O", "Q", "R", "S"}, 20, "D+1", 3)...)

	teammates, opponents := stats.InteractionStats("P", games, tractor.MinSampleSize)

	// T shared 8 same-side games with P.
	tStat, ok := teammates["T"]
	require.True(t, ok)
	assert.Equal(t, 8, tStat.Games)
	// (5*2 + 3*-1) / 8
	assert.InDelta(t, 7.0/8.0, tStat.AvgLevelChange, 1e-9)

	// O shared 8 opposite-side games with P.
	oStat, ok := opponents["O"]
	require.True(t, ok)
	assert.Equal(t, 8, oStat.Games)
	assert.InDelta(t, 7.0/8.0, oStat.AvgLevelChange, 1e-9)

	// No pair appears on both lists here.
	_, ok = teammates["O"]
	assert.False(t, ok)
	_, ok = opponents["T"]
	assert.False(t, ok)
}

func TestInteractionStatsExhaustiveAndDisjoint(t *testing.T) {
	var games []tractor.GameRecord
	games = append(games, repeatGames([]string{"P", "X"}, []string{"Y", "Q", "R", "S"}, 50, "A+1", 4)...)
	games = append(games, repeatGames([]string{"P", "Y"}, []string{"X", "Q", "R", "S"}, 50, "D+1", 4)...)

	// Count with threshold 1 so nothing is filtered.
	teammates, opponents := stats.InteractionStats("P", games, 1)

	// X: 4 same-side + 4 opposite-side games; both groups must see exactly
	// those counts, and their sum equals the shared-game total.
	assert.Equal(t, 4, teammates["X"].Games)
	assert.Equal(t, 4, opponents["X"].Games)
	assert.Equal(t, 4, teammates["Y"].Games)
	assert.Equal(t, 4, opponents["Y"].Games)
}

func TestInteractionStatsThresholdIndependent(t *testing.T) {
	var games []tractor.GameRecord
	// 5 same-side games with T, but only 2 opposite-side games with T.
	games = append(games, repeatGames([]string{"P", "T"}, []string{"Q", "R", "S", "U"}, 50, "A+1", 5)...)
	games = append(games, repeatGames([]string{"P"}, []string{"T", "Q", "R", "S"}, 50, "A+1", 2)...)

	teammates, opponents := stats.InteractionStats("P", games, tractor.MinSampleSize)

	_, ok := teammates["T"]
	assert.True(t, ok, "teammate group reached the threshold")
	_, ok = opponents["T"]
	assert.False(t, ok, "opponent group stayed under the threshold")
}

func TestInteractionStatsNoSharedGames(t *testing.T) {
	games := repeatGames([]string{"A"}, []string{"B", "C", "D", "E"}, 50, "A+1", 3)

	teammates, opponents := stats.InteractionStats("ghost", games, 1)
	assert.Empty(t, teammates)
	assert.Empty(t, opponents)
}

func TestRankInteractions(t *testing.T) {
	interactions := map[string]stats.InteractionStat{
		"best":  {AvgLevelChange: 1.5, Games: 6},
		"mid":   {AvgLevelChange: 0.5, Games: 8},
		"worst": {AvgLevelChange: -1.0, Games: 5},
	}

	ranked := stats.RankInteractions(interactions, false)
	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"best", "mid", "worst"},
		[]string{ranked[0].Player, ranked[1].Player, ranked[2].Player})
	assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})

	toughest := stats.RankInteractions(interactions, true)
	assert.Equal(t, "worst", toughest[0].Player)
}

func TestRankInteractionsTieBreaksOnName(t *testing.T) {
	interactions := map[string]stats.InteractionStat{
		"zoe":  {AvgLevelChange: 1.0, Games: 5},
		"adam": {AvgLevelChange: 1.0, Games: 5},
	}

	ranked := stats.RankInteractions(interactions, false)
	require.Len(t, ranked, 2)
	assert.Equal(t, "adam", ranked[0].Player)
	assert.Equal(t, "zoe", ranked[1].Player)
}
