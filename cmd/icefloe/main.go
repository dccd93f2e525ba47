// icefloe is a command line client for the penguin board game server.
//
// Usage:
//
//	icefloe play          - Connect to a server and play a game
//	icefloe history       - Show archived game results
//	icefloe strategies    - List built-in move strategies
//
// Global flags:
//
//	--config <path>     - Explicit config file (default: search path)
//	--db <path>         - Game archive path (default: ~/.icefloe/games.db)
//	--log-level <lvl>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icefloe",
	Short: "icefloe - play the penguin board game over the network",
	Long: `icefloe connects to a penguin game server, keeps the reconstructed
game state in sync with the server, and answers move requests with one
of its built-in strategies.

Available commands:
  play        - Connect to a server and play (or finish) a game
  history     - Show archived game results
  strategies  - List built-in move strategies

Examples:
  icefloe play
  icefloe play --host play.example.org --port 13050 --strategy random
  icefloe play --room r-42 --survive
  icefloe history --limit 10`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagLogLevel != "" {
			lvl, err := log.ParseLevel(flagLogLevel)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
				lvl = log.InfoLevel
			}
			log.SetLevel(lvl)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game archive database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(strategiesCmd)
}
