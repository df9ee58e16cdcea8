package stats

import (
	"math"
	"sort"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// Leaderboards builds one ranked table per metric from the full stat
// bundle mapping. Players need a sample size of at least
// tractor.MinSampleSize for a metric to appear on its board; metrics with
// no qualifying players are omitted entirely.
//
// The players slice fixes the input order: the sort is stable, so ties
// keep the order players were discovered in the source table. Callers that
// shade outliers must keep the unfiltered bundle mapping alongside the
// boards returned here; the two are different views of the same
// computation.
func Leaderboards(players []string, byPlayer map[string]PlayerStats) map[Metric][]Entry {
	boards := make(map[Metric][]Entry)

	for _, metric := range AllMetrics {
		var entries []Entry
		for _, player := range players {
			line := byPlayer[player].Line(metric)
			if line.SampleSize < tractor.MinSampleSize {
				continue
			}
			entries = append(entries, Entry{
				Player:     player,
				Value:      round3(line.Value),
				SampleSize: line.SampleSize,
			})
		}
		if len(entries) == 0 {
			continue
		}

		ascending := metric.LowerIsBetter()
		sort.SliceStable(entries, func(i, j int) bool {
			if ascending {
				return entries[i].Value < entries[j].Value
			}
			return entries[i].Value > entries[j].Value
		})
		// Ranks are a strict 1..n sequence; tied values keep their
		// stable sort order and still get distinct ranks.
		for i := range entries {
			entries[i].Rank = i + 1
		}
		boards[metric] = entries
	}

	return boards
}

// MetricDistribution computes the mean and population standard deviation
// of a metric across every player with at least one qualifying game. This
// is the unfiltered reference set used for outlier shading, so it must not
// apply the leaderboard's minimum-sample filter.
func MetricDistribution(byPlayer map[string]PlayerStats, metric Metric) Distribution {
	var values []float64
	for _, stats := range byPlayer {
		if line := stats.Line(metric); line.SampleSize > 0 {
			values = append(values, line.Value)
		}
	}
	return NewDistribution(values)
}

// NewDistribution computes mean and population standard deviation.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return Distribution{Mean: mean, StdDev: math.Sqrt(variance)}
}

// ZScore reports how many standard deviations v sits from the mean.
// A zero-spread distribution yields 0 for every value.
func (d Distribution) ZScore(v float64) float64 {
	if d.StdDev == 0 {
		return 0
	}
	return (v - d.Mean) / d.StdDev
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
