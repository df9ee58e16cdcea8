package tractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tractorclub/levelboard/internal/tractor"
)

func TestLevelChange(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected int
	}{
		{"draw", "Draw", 0},
		{"attacking advance", "A+2", 2},
		{"attacking big advance", "A+12", 12},
		{"defending advance", "D+3", -3},
		{"attacking zero", "A+0", 0},
		{"whitespace trimmed", "  A+1  ", 1},
		{"empty string", "", 0},
		{"garbage", "banana", 0},
		{"missing digits", "A+", 0},
		{"non-numeric digits", "D+x", 0},
		{"negative digits rejected", "A+-3", 0},
		{"lowercase prefix ignored", "a+2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tractor.LevelChange(tt.result))
		})
	}
}

func TestPlayerLevelChange(t *testing.T) {
	game := tractor.GameRecord{
		Attacking: []string{"X", "Y"},
		Defending: []string{"Z", "W"},
		Decks:     2,
		Points:    3,
		Result:    "A+2",
	}

	assert.Equal(t, 2, game.PlayerLevelChange("X"))
	assert.Equal(t, -2, game.PlayerLevelChange("Z"))
	assert.Equal(t, 0, game.PlayerLevelChange("absent"))
}
