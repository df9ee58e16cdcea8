package stats

import (
	"sort"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// InteractionStats computes, for the focal player, the average signed
// level change across games shared with each other player, split into
// same-side (teammate) and opposite-side (opponent) groups. A pair's group
// is only emitted once its own game count reaches minGames; the two groups
// qualify independently.
//
// Every shared game lands in exactly one of the two groups: slot
// membership partitions a record's participants into two disjoint sides.
func InteractionStats(player string, games []tractor.GameRecord, minGames int) (teammates, opponents map[string]InteractionStat) {
	var shared []tractor.GameRecord
	for _, g := range games {
		if g.Participates(player) {
			shared = append(shared, g)
		}
	}

	teammates = make(map[string]InteractionStat)
	opponents = make(map[string]InteractionStat)
	if len(shared) == 0 {
		return teammates, opponents
	}

	type group struct{ accumulator }
	teammateGroups := make(map[string]*group)
	opponentGroups := make(map[string]*group)

	for _, g := range shared {
		playerSide := g.Side(player)
		levelChange := float64(g.PlayerLevelChange(player))

		for _, other := range append(append([]string{}, g.Attacking...), g.Defending...) {
			if other == "" || other == player {
				continue
			}
			groups := opponentGroups
			if g.Side(other) == playerSide {
				groups = teammateGroups
			}
			if groups[other] == nil {
				groups[other] = &group{}
			}
			groups[other].add(levelChange)
		}
	}

	for other, grp := range teammateGroups {
		if grp.count >= minGames {
			line := grp.line()
			teammates[other] = InteractionStat{AvgLevelChange: line.Value, Games: line.SampleSize}
		}
	}
	for other, grp := range opponentGroups {
		if grp.count >= minGames {
			line := grp.line()
			opponents[other] = InteractionStat{AvgLevelChange: line.Value, Games: line.SampleSize}
		}
	}

	return teammates, opponents
}

// RankInteractions turns an interaction mapping into a dense-ranked table.
// Teammates rank high-to-low (best teammates first); opponents low-to-high
// (toughest opponents first). Value ties break on player name so the
// ordering is reproducible.
func RankInteractions(interactions map[string]InteractionStat, ascending bool) []InteractionEntry {
	entries := make([]InteractionEntry, 0, len(interactions))
	for player, stat := range interactions {
		entries = append(entries, InteractionEntry{
			Player:         player,
			AvgLevelChange: round3(stat.AvgLevelChange),
			Games:          stat.Games,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AvgLevelChange != entries[j].AvgLevelChange {
			if ascending {
				return entries[i].AvgLevelChange < entries[j].AvgLevelChange
			}
			return entries[i].AvgLevelChange > entries[j].AvgLevelChange
		}
		return entries[i].Player < entries[j].Player
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
