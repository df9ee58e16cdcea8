package tractor

// MinSampleSize is the minimum number of qualifying games a metric needs
// before it is shown on leaderboards and pairwise rankings.
const MinSampleSize = 5

// Deck counts the league actually plays with. Stats for the two partitions
// are computed and stored independently and never mixed.
const (
	TwoDecks   = 2
	ThreeDecks = 3
)

// Side identifies which team a player was on for a given hand.
type Side int

const (
	SideNone Side = iota
	SideAttacking
	SideDefending
)

// GameRecord is one played hand of Tractor.
//
// Attacking holds up to 5 player names (slots A1..A5), Defending holds up
// to 4 (slots D1..D4). Defending[0] is always the dealer; this is a schema
// invariant of the source sheet, not something inferred from the data.
// Points is the point total collected by the attacking side.
type GameRecord struct {
	Attacking []string `json:"attacking"`
	Defending []string `json:"defending"`
	Decks     int      `json:"decks"`
	Points    float64  `json:"points"`
	Result    string   `json:"result"`
}

// Side reports which team the player was on for this hand.
func (g *GameRecord) Side(player string) Side {
	for _, name := range g.Attacking {
		if name == player {
			return SideAttacking
		}
	}
	for _, name := range g.Defending {
		if name == player {
			return SideDefending
		}
	}
	return SideNone
}

// Participates reports whether the player appears in any slot of this hand.
func (g *GameRecord) Participates(player string) bool {
	return g.Side(player) != SideNone
}

// IsDealer reports whether the player occupied the dealer slot (D1).
func (g *GameRecord) IsDealer(player string) bool {
	return len(g.Defending) > 0 && g.Defending[0] == player
}

// PlayerLevelChange is the signed level change from the player's point of
// view: the raw result value if attacking, negated if defending, 0 if the
// player did not take part.
func (g *GameRecord) PlayerLevelChange(player string) int {
	switch g.Side(player) {
	case SideAttacking:
		return LevelChange(g.Result)
	case SideDefending:
		return -LevelChange(g.Result)
	default:
		return 0
	}
}

// FilterByDecks returns the rows played with the given number of decks.
func FilterByDecks(games []GameRecord, decks int) []GameRecord {
	var out []GameRecord
	for _, g := range games {
		if g.Decks == decks {
			out = append(out, g)
		}
	}
	return out
}

// UniquePlayers returns every player name appearing in any slot, in
// discovery order (row by row, attacking slots before defending slots).
// Leaderboard tie-breaking relies on this order being deterministic for a
// given table.
func UniquePlayers(games []GameRecord) []string {
	seen := make(map[string]bool)
	var players []string
	for _, g := range games {
		for _, name := range g.Attacking {
			if name != "" && !seen[name] {
				seen[name] = true
				players = append(players, name)
			}
		}
		for _, name := range g.Defending {
			if name != "" && !seen[name] {
				seen[name] = true
				players = append(players, name)
			}
		}
	}
	return players
}
