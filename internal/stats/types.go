package stats

// Metric identifies one of the per-player performance metrics.
type Metric string

const (
	// Average points collected by the player's side while attacking.
	MetricAttackingPoints Metric = "avg_attacking_points"
	// Average points conceded to the attackers across all defending games.
	MetricDefendingPoints Metric = "avg_defending_points"
	// As above, restricted to defending games where the player was not the dealer.
	MetricDefendingNonDealerPoints Metric = "avg_defending_non_dealer_points"
	// As above, restricted to defending games where the player held the dealer slot.
	MetricDefendingDealerPoints Metric = "avg_defending_dealer_points"
	// Average signed level change across every game the player took part in.
	MetricLevelChange Metric = "avg_level_change"
)

// AllMetrics lists every metric in its fixed display order.
var AllMetrics = []Metric{
	MetricAttackingPoints,
	MetricDefendingPoints,
	MetricDefendingNonDealerPoints,
	MetricDefendingDealerPoints,
	MetricLevelChange,
}

// LowerIsBetter reports the sort direction for a metric's leaderboard.
// Conceding fewer points while defending is good; everything else ranks
// high-to-low.
func (m Metric) LowerIsBetter() bool {
	switch m {
	case MetricDefendingPoints, MetricDefendingNonDealerPoints, MetricDefendingDealerPoints:
		return true
	default:
		return false
	}
}

// DisplayName is the human-readable title used by the CLI and Slack
// notifications.
func (m Metric) DisplayName() string {
	switch m {
	case MetricAttackingPoints:
		return "Avg. collected when attacking"
	case MetricDefendingPoints:
		return "Avg. opponents collected when defending"
	case MetricDefendingNonDealerPoints:
		return "Avg. opponents collected defending (non-dealer)"
	case MetricDefendingDealerPoints:
		return "Avg. opponents collected defending (dealer)"
	case MetricLevelChange:
		return "Avg. level change"
	default:
		return string(m)
	}
}

// StatLine pairs a metric value with the number of games it was computed
// from. An empty subset yields {0, 0}, never NaN.
type StatLine struct {
	Value      float64 `json:"value"`
	SampleSize int     `json:"sample_size"`
}

// PlayerStats is the full stat bundle for one player within a single
// deck-count partition.
type PlayerStats struct {
	AttackingPoints          StatLine `json:"avg_attacking_points"`
	DefendingPoints          StatLine `json:"avg_defending_points"`
	DefendingNonDealerPoints StatLine `json:"avg_defending_non_dealer_points"`
	DefendingDealerPoints    StatLine `json:"avg_defending_dealer_points"`
	LevelChange              StatLine `json:"avg_level_change"`
}

// Line returns the stat line for the given metric.
func (p PlayerStats) Line(m Metric) StatLine {
	switch m {
	case MetricAttackingPoints:
		return p.AttackingPoints
	case MetricDefendingPoints:
		return p.DefendingPoints
	case MetricDefendingNonDealerPoints:
		return p.DefendingNonDealerPoints
	case MetricDefendingDealerPoints:
		return p.DefendingDealerPoints
	case MetricLevelChange:
		return p.LevelChange
	default:
		return StatLine{}
	}
}

// Entry is one ranked row of a leaderboard.
type Entry struct {
	Rank       int     `json:"rank"`
	Player     string  `json:"player"`
	Value      float64 `json:"value"`
	SampleSize int     `json:"sample_size"`
}

// InteractionStat is the average signed level change a focal player records
// across the games shared with one specific other player.
type InteractionStat struct {
	AvgLevelChange float64 `json:"avg_level_change"`
	Games          int     `json:"games"`
}

// InteractionEntry is one ranked row of a teammate or opponent table.
type InteractionEntry struct {
	Rank           int     `json:"rank"`
	Player         string  `json:"player"`
	AvgLevelChange float64 `json:"avg_level_change"`
	Games          int     `json:"games"`
}

// GlobalStats summarises one deck-count partition of the game log.
type GlobalStats struct {
	TotalGames    int            `json:"total_games"`
	AveragePoints float64        `json:"average_points"`
	ResultCounts  map[string]int `json:"result_counts"`
}

// Distribution holds the mean and standard deviation of a metric across
// every player, filtered or not. The presentation layer uses it to shade
// outliers; the unfiltered stat bundles are its usual input.
type Distribution struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}
