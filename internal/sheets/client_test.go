package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchGames(t *testing.T) {
	mockCSV := `A1,A2,A3,A4,A5,D1,D2,D3,D4,# decks,Points,Result
Alice,Bob,,,,Carol,Dave,Erin,Frank,2,85,A+2
Grace,Heidi,Ivan,,,Judy,Ken,Lea,Mal,3,40,D+1
Alice,Bob,,,,Carol,Dave,Erin,Frank,2,60,Draw
`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, mockCSV)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.httpClient = server.Client()

	games, err := client.FetchGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 3)

	first := games[0]
	assert.Equal(t, []string{"Alice", "Bob"}, first.Attacking)
	assert.Equal(t, []string{"Carol", "Dave", "Erin", "Frank"}, first.Defending)
	assert.Equal(t, 2, first.Decks)
	assert.Equal(t, 85.0, first.Points)
	assert.Equal(t, "A+2", first.Result)
	assert.True(t, first.IsDealer("Carol"))

	second := games[1]
	assert.Equal(t, 3, second.Decks)
	assert.Equal(t, -1, second.PlayerLevelChange("Grace"))
	assert.Equal(t, 1, second.PlayerLevelChange("Judy"))
}

func TestFetchGamesSkipsMalformedRows(t *testing.T) {
	mockCSV := `A1,A2,A3,A4,A5,D1,D2,D3,D4,# decks,Points,Result
Alice,Bob,,,,Carol,Dave,Erin,Frank,2,85,A+2
Grace,Heidi,,,,Judy,Ken,Lea,Mal,not-a-number,40,D+1
Alice,Bob,,,,Carol,Dave,Erin,Frank,2,,A+1
`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mockCSV)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.httpClient = server.Client()

	games, err := client.FetchGames(context.Background())
	require.NoError(t, err)
	// Bad deck count drops the row; missing points keeps it with 0 points.
	require.Len(t, games, 2)
	assert.Equal(t, 0.0, games[1].Points)
	assert.Equal(t, "A+1", games[1].Result)
}

func TestFetchGamesErrors(t *testing.T) {
	t.Run("non-OK status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		client.httpClient = server.Client()

		_, err := client.FetchGames(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing required column", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "A1,A2,D1,# decks,Points\nAlice,Bob,Carol,2,10\n")
		}))
		defer server.Close()

		client := NewClient(server.URL)
		client.httpClient = server.Client()

		_, err := client.FetchGames(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Result")
	})
}
