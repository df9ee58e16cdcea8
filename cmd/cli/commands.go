package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/tractorclub/levelboard/internal/stats"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(leaderboardsCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(interactionsCmd)
	rootCmd.AddCommand(globalCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(metricsCmd)

	clearCmd.Flags().Bool("archive", false, "Also clear the snapshot archive")
	interactionsCmd.Flags().IntVar(&minGames, "min-games", 5, "Minimum shared games for an interaction row")
	notifyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the Slack payload instead of posting it")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force a fresh fetch of the game sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/refresh")
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the in-memory game cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/clear"
		if withArchive, _ := cmd.Flags().GetBool("archive"); withArchive {
			endpoint += "?archive=true"
		}
		return performGetRequest(endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify [player]",
	Short: "Post the leaderboards, or one player's stat card, to Slack",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/notify/leaderboard?decks=%d", decks)
		if len(args) == 1 {
			endpoint = fmt.Sprintf("/notify/player?name=%s&decks=%d", url.QueryEscape(args[0]), decks)
		}
		if dryRun {
			endpoint += "&dry_run=true"
		}
		return performGetRequest(endpoint)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List every player discovered in the game log",
	RunE: func(cmd *cobra.Command, args []string) error {
		var players []string
		if err := fetchJSON("/players", &players); err != nil {
			return err
		}
		for i, p := range players {
			fmt.Printf("%3d. %s\n", i+1, p)
		}
		return nil
	},
}

type leaderboardsResponse struct {
	Decks      int                            `json:"decks"`
	Boards     map[stats.Metric][]stats.Entry `json:"boards"`
	AllPlayers map[string]stats.PlayerStats   `json:"all_players"`
}

var leaderboardsCmd = &cobra.Command{
	Use:   "leaderboards",
	Short: "Print the per-metric leaderboards for one deck partition",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp leaderboardsResponse
		if err := fetchJSON(fmt.Sprintf("/leaderboards?decks=%d", decks), &resp); err != nil {
			return err
		}

		fmt.Printf("\n%d-deck leaderboards (%d players in league)\n", resp.Decks, len(resp.AllPlayers))
		for _, metric := range stats.AllMetrics {
			entries := resp.Boards[metric]
			if len(entries) == 0 {
				continue
			}
			fmt.Printf("\n%s\n", metric.DisplayName())
			table := newTable(os.Stdout)
			table.Header("RANK", "PLAYER", "VALUE", "GAMES")
			for _, e := range entries {
				table.Append(
					strconv.Itoa(e.Rank),
					e.Player,
					fmt.Sprintf("%.3f", e.Value),
					strconv.Itoa(e.SampleSize),
				)
			}
			table.Render()
		}
		return nil
	},
}

type playerStatsResponse struct {
	Player string            `json:"player"`
	Decks  int               `json:"decks"`
	Stats  stats.PlayerStats `json:"stats"`
}

var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Print one player's descriptive statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/stats/player?name=%s&decks=%d", url.QueryEscape(args[0]), decks)
		var resp playerStatsResponse
		if err := fetchJSON(endpoint, &resp); err != nil {
			return err
		}

		fmt.Printf("\n%s (%d decks)\n", resp.Player, resp.Decks)
		table := newTable(os.Stdout)
		table.Header("METRIC", "VALUE", "GAMES")
		for _, metric := range stats.AllMetrics {
			line := resp.Stats.Line(metric)
			value := "—"
			if line.SampleSize > 0 {
				value = fmt.Sprintf("%.3f", line.Value)
			}
			table.Append(metric.DisplayName(), value, strconv.Itoa(line.SampleSize))
		}
		table.Render()
		return nil
	},
}

type interactionsResponse struct {
	Player    string                   `json:"player"`
	Decks     int                      `json:"decks"`
	MinGames  int                      `json:"min_games"`
	Teammates []stats.InteractionEntry `json:"teammates"`
	Opponents []stats.InteractionEntry `json:"opponents"`
}

var interactionsCmd = &cobra.Command{
	Use:   "interactions <name>",
	Short: "Print a player's teammate and opponent effect tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/stats/interactions?name=%s&decks=%d&min_games=%d",
			url.QueryEscape(args[0]), decks, minGames)
		var resp interactionsResponse
		if err := fetchJSON(endpoint, &resp); err != nil {
			return err
		}

		fmt.Printf("\n%s (%d decks, min %d shared games)\n", resp.Player, resp.Decks, resp.MinGames)
		printInteractionTable("Teammates", resp.Teammates)
		printInteractionTable("Opponents", resp.Opponents)
		return nil
	},
}

func printInteractionTable(title string, entries []stats.InteractionEntry) {
	fmt.Printf("\n%s\n", title)
	if len(entries) == 0 {
		fmt.Println("(no rows above the shared-game threshold)")
		return
	}
	table := newTable(os.Stdout)
	table.Header("RANK", "PLAYER", "AVG LEVEL CHANGE", "GAMES")
	for _, e := range entries {
		table.Append(
			strconv.Itoa(e.Rank),
			e.Player,
			fmt.Sprintf("%+.3f", e.AvgLevelChange),
			strconv.Itoa(e.Games),
		)
	}
	table.Render()
}

type globalStatsResponse struct {
	TwoDecks   stats.GlobalStats `json:"two_decks"`
	ThreeDecks stats.GlobalStats `json:"three_decks"`
}

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Print league-wide totals for both deck partitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp globalStatsResponse
		if err := fetchJSON("/stats/global", &resp); err != nil {
			return err
		}

		for _, row := range []struct {
			decks int
			gs    stats.GlobalStats
		}{{2, resp.TwoDecks}, {3, resp.ThreeDecks}} {
			fmt.Printf("\n%d decks: %d games, %.3f avg points\n", row.decks, row.gs.TotalGames, row.gs.AveragePoints)
			if len(row.gs.ResultCounts) == 0 {
				continue
			}
			table := newTable(os.Stdout)
			table.Header("RESULT", "COUNT")
			results := make([]string, 0, len(row.gs.ResultCounts))
			for r := range row.gs.ResultCounts {
				results = append(results, r)
			}
			sort.Slice(results, func(i, j int) bool {
				if row.gs.ResultCounts[results[i]] != row.gs.ResultCounts[results[j]] {
					return row.gs.ResultCounts[results[i]] > row.gs.ResultCounts[results[j]]
				}
				return results[i] < results[j]
			})
			for _, r := range results {
				table.Append(r, strconv.Itoa(row.gs.ResultCounts[r]))
			}
			table.Render()
		}
		return nil
	},
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func fetchJSON(endpoint string, out any) error {
	resp, err := http.Get(host + endpoint)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
