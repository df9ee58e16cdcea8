package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tractorclub/levelboard/internal/tractor"
)

// Column headers of the published game log.
var (
	attackingCols = []string{"A1", "A2", "A3", "A4", "A5"}
	defendingCols = []string{"D1", "D2", "D3", "D4"}
)

const (
	decksCol  = "# decks"
	pointsCol = "Points"
	resultCol = "Result"
)

// APIClient fetches the game log published as CSV from Google Sheets.
type APIClient struct {
	httpClient *http.Client
	SheetURL   string
}

// NewClient creates a new sheet client for the given published CSV URL.
func NewClient(sheetURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		SheetURL:   sheetURL,
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// FetchGames downloads and parses the full game table. Rows that cannot be
// parsed into a game record are skipped, not surfaced as errors.
func (c *APIClient) FetchGames(ctx context.Context) ([]tractor.GameRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SheetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	log.Debug("Fetching game log from sheet", "url", c.SheetURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from sheet", "status", resp.StatusCode)
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet returned no rows")
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{decksCol, pointsCol, resultCol} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("sheet is missing required column %q", required)
		}
	}

	games := make([]tractor.GameRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		game, ok := parseRow(row, index)
		if !ok {
			log.Debug("Skipping malformed game row", "row", i+2)
			continue
		}
		games = append(games, game)
	}

	log.Info("Fetched game log", "rows", len(games))
	return games, nil
}

// parseRow converts one CSV row into a GameRecord. Attacking slots drop
// trailing blanks; defending slots keep their positions so that index 0
// stays the dealer.
func parseRow(row []string, index map[string]int) (tractor.GameRecord, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	decks, err := strconv.Atoi(field(decksCol))
	if err != nil {
		return tractor.GameRecord{}, false
	}

	// Missing points degrade to 0 rather than dropping the row.
	points, err := strconv.ParseFloat(field(pointsCol), 64)
	if err != nil {
		points = 0
	}

	game := tractor.GameRecord{
		Decks:  decks,
		Points: points,
		Result: field(resultCol),
	}
	for _, col := range attackingCols {
		if name := field(col); name != "" {
			game.Attacking = append(game.Attacking, name)
		}
	}
	for _, col := range defendingCols {
		game.Defending = append(game.Defending, field(col))
	}

	return game, true
}
