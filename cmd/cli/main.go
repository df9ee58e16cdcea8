package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host     string
	decks    int
	minGames int
	dryRun   bool
)

var rootCmd = &cobra.Command{
	Use:   "levelboard-cli",
	Short: "A CLI to interact with the levelboard server",
	Long: `A command-line interface for making requests to the various endpoints
of the levelboard application and rendering the results as tables.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:7860", "The host address of the server")
	rootCmd.PersistentFlags().IntVar(&decks, "decks", 2, "The deck partition to query (2 or 3)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
