package sheets

import (
	"context"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// Client defines the interface for fetching the league's game log.
type Client interface {
	FetchGames(ctx context.Context) ([]tractor.GameRecord, error)
}
