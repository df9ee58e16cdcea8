package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tractorclub/levelboard/internal/stats"
	"github.com/tractorclub/levelboard/internal/tractor"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// loadGames is the shared entry point for every stats handler. A load
// failure with no fallback is the only error the core surfaces; it is
// returned to clients as an {"error": ...} body which they must check
// before treating the response as real data.
func (s *Server) loadGames(r *http.Request) ([]tractor.GameRecord, error) {
	forceRefresh := r.URL.Query().Get("refresh") == "true"
	return s.Loader.Load(r.Context(), forceRefresh)
}

// decksFromQuery parses the mandatory deck partition selector.
func decksFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("decks")
	if raw == "" {
		return tractor.TwoDecks, nil
	}
	decks, err := strconv.Atoi(raw)
	if err != nil || (decks != tractor.TwoDecks && decks != tractor.ThreeDecks) {
		return 0, fmt.Errorf("invalid decks parameter %q: must be 2 or 3", raw)
	}
	return decks, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encodeErr != nil {
		log.Error("Failed to write error response", "error", encodeErr)
	}
}

func (s *Server) GamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		if raw := r.URL.Query().Get("decks"); raw != "" {
			decks, err := decksFromQuery(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			games = tractor.FilterByDecks(games, decks)
		}
		writeJSON(w, games)
	}
}

func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		players := tractor.UniquePlayers(games)
		if players == nil {
			players = []string{}
		}
		writeJSON(w, players)
	}
}

// leaderboardsResponse carries both views of the same computation: the
// filtered ranked boards and the unfiltered per-player bundles with their
// distributions, which the presentation layer needs for outlier shading.
type leaderboardsResponse struct {
	Decks         int                               `json:"decks"`
	Boards        map[stats.Metric][]stats.Entry    `json:"boards"`
	AllPlayers    map[string]stats.PlayerStats      `json:"all_players"`
	Distributions map[stats.Metric]stats.Distribution `json:"distributions"`
}

func (s *Server) LeaderboardsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		decks, err := decksFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		start := time.Now()
		partition := tractor.FilterByDecks(games, decks)
		players, byPlayer := stats.ComputeAllStats(partition)
		boards := stats.Leaderboards(players, byPlayer)

		distributions := make(map[stats.Metric]stats.Distribution, len(stats.AllMetrics))
		for _, metric := range stats.AllMetrics {
			distributions[metric] = stats.MetricDistribution(byPlayer, metric)
		}
		s.Metrics.ObserveStatsComputeDuration(time.Since(start).Seconds())

		writeJSON(w, leaderboardsResponse{
			Decks:         decks,
			Boards:        boards,
			AllPlayers:    byPlayer,
			Distributions: distributions,
		})
	}
}

type playerStatsResponse struct {
	Player string            `json:"player"`
	Decks  int               `json:"decks"`
	Stats  stats.PlayerStats `json:"stats"`
}

func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("missing name parameter"))
			return
		}
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		decks, err := decksFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		if !playerKnown(games, name) {
			writeError(w, http.StatusNotFound, fmt.Errorf("unknown player %q", name))
			return
		}

		partition := tractor.FilterByDecks(games, decks)
		writeJSON(w, playerStatsResponse{
			Player: name,
			Decks:  decks,
			Stats:  stats.ComputePlayerStats(name, partition),
		})
	}
}

type interactionsResponse struct {
	Player    string                   `json:"player"`
	Decks     int                      `json:"decks"`
	MinGames  int                      `json:"min_games"`
	Teammates []stats.InteractionEntry `json:"teammates"`
	Opponents []stats.InteractionEntry `json:"opponents"`
}

func (s *Server) InteractionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("missing name parameter"))
			return
		}
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		decks, err := decksFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		minGames := tractor.MinSampleSize
		if raw := r.URL.Query().Get("min_games"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				writeError(w, http.StatusBadRequest, fmt.Errorf("invalid min_games parameter %q", raw))
				return
			}
			minGames = parsed
		}

		if !playerKnown(games, name) {
			writeError(w, http.StatusNotFound, fmt.Errorf("unknown player %q", name))
			return
		}

		partition := tractor.FilterByDecks(games, decks)
		teammates, opponents := stats.InteractionStats(name, partition, minGames)

		writeJSON(w, interactionsResponse{
			Player:    name,
			Decks:     decks,
			MinGames:  minGames,
			Teammates: stats.RankInteractions(teammates, false),
			Opponents: stats.RankInteractions(opponents, true),
		})
	}
}

type globalStatsResponse struct {
	TwoDecks   stats.GlobalStats `json:"two_decks"`
	ThreeDecks stats.GlobalStats `json:"three_decks"`
}

func (s *Server) GlobalStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeJSON(w, globalStatsResponse{
			TwoDecks:   stats.ComputeGlobalStats(tractor.FilterByDecks(games, tractor.TwoDecks)),
			ThreeDecks: stats.ComputeGlobalStats(tractor.FilterByDecks(games, tractor.ThreeDecks)),
		})
	}
}

func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to force a game log refresh")
		games, err := s.Loader.Load(r.Context(), true)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeJSON(w, map[string]int{"games": len(games)})
	}
}

func (s *Server) ClearCacheHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear the game log cache")
		s.Loader.Clear()

		if r.URL.Query().Get("archive") == "true" && s.Archive != nil {
			if err := s.Archive.Clear(); err != nil {
				writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to clear archive: %w", err))
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Cache and archive cleared!")
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Cache cleared!")
	}
}

func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			writeError(w, http.StatusServiceUnavailable, fmt.Errorf("slack notifier is not configured"))
			return
		}
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		decks, err := decksFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		partition := tractor.FilterByDecks(games, decks)
		players, byPlayer := stats.ComputeAllStats(partition)
		boards := stats.Leaderboards(players, byPlayer)

		if err := s.Notifier.SendLeaderboards(decks, boards, isDryRunFromContext(r)); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Leaderboard notification sent.")
	}
}

func (s *Server) NotifyPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			writeError(w, http.StatusServiceUnavailable, fmt.Errorf("slack notifier is not configured"))
			return
		}
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("missing required parameter: name"))
			return
		}
		games, err := s.loadGames(r)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		decks, err := decksFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		if !playerKnown(games, name) {
			if err := s.Notifier.SendPlayerNotFound(name, isDryRunFromContext(r)); err != nil {
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			writeError(w, http.StatusNotFound, fmt.Errorf("unknown player %q", name))
			return
		}

		partition := tractor.FilterByDecks(games, decks)
		bundle := stats.ComputePlayerStats(name, partition)

		if err := s.Notifier.SendPlayerStats(name, decks, bundle, isDryRunFromContext(r)); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Player stats notification sent.")
	}
}

func playerKnown(games []tractor.GameRecord, name string) bool {
	for _, g := range games {
		if g.Participates(name) {
			return true
		}
	}
	return false
}
