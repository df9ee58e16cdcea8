// Package stats derives per-player metrics, pairwise interaction effects
// and ranked leaderboards from the raw game log. Everything here is pure
// computation over an already-fetched table; aggregation never returns an
// error, it degrades empty subsets to zero values instead.
package stats

import (
	"github.com/tractorclub/levelboard/internal/tractor"
)

// ComputePlayerStats computes the stat bundle for one player over a table
// that has already been filtered to a single deck-count partition.
func ComputePlayerStats(player string, games []tractor.GameRecord) PlayerStats {
	var (
		attacking          accumulator
		defending          accumulator
		defendingNonDealer accumulator
		defendingDealer    accumulator
		levelChange        accumulator
	)

	for _, g := range games {
		side := g.Side(player)
		if side == tractor.SideNone {
			continue
		}

		switch side {
		case tractor.SideAttacking:
			attacking.add(g.Points)
			levelChange.add(float64(tractor.LevelChange(g.Result)))
		case tractor.SideDefending:
			defending.add(g.Points)
			if g.IsDealer(player) {
				defendingDealer.add(g.Points)
			} else {
				defendingNonDealer.add(g.Points)
			}
			levelChange.add(float64(-tractor.LevelChange(g.Result)))
		}
	}

	return PlayerStats{
		AttackingPoints:          attacking.line(),
		DefendingPoints:          defending.line(),
		DefendingNonDealerPoints: defendingNonDealer.line(),
		DefendingDealerPoints:    defendingDealer.line(),
		LevelChange:              levelChange.line(),
	}
}

// ComputeAllStats computes stat bundles for every player discovered in the
// table. The returned slice preserves discovery order, which later drives
// the leaderboard's stable tie-breaking.
func ComputeAllStats(games []tractor.GameRecord) ([]string, map[string]PlayerStats) {
	players := tractor.UniquePlayers(games)
	byPlayer := make(map[string]PlayerStats, len(players))
	for _, p := range players {
		byPlayer[p] = ComputePlayerStats(p, games)
	}
	return players, byPlayer
}

// ComputeGlobalStats summarises one deck-count partition.
func ComputeGlobalStats(games []tractor.GameRecord) GlobalStats {
	var points accumulator
	counts := make(map[string]int)
	for _, g := range games {
		points.add(g.Points)
		counts[g.Result]++
	}
	return GlobalStats{
		TotalGames:    len(games),
		AveragePoints: points.line().Value,
		ResultCounts:  counts,
	}
}

// accumulator tracks a running sum and count for one metric subset.
type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

// line produces the finished stat line. Zero games means value 0, not NaN.
func (a accumulator) line() StatLine {
	if a.count == 0 {
		return StatLine{}
	}
	return StatLine{Value: a.sum / float64(a.count), SampleSize: a.count}
}
