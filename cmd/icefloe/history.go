package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcticline/icefloe/internal/archive"
	"github.com/arcticline/icefloe/internal/config"
	"github.com/arcticline/icefloe/internal/logic"
)

var (
	flagLimit        int
	flagHistStrategy string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived game results",
	Long: `Display the most recently archived games, newest first.

With --strategy the summary line also shows that strategy's win rate.

Examples:
  icefloe history
  icefloe history --limit 5
  icefloe history --strategy greedy`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of games to show")
	historyCmd.Flags().StringVar(&flagHistStrategy, "strategy", "", "Show the win rate for this strategy")
}

func runHistory(cmd *cobra.Command, args []string) {
	dbPath := flagDBPath
	if dbPath == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		dbPath = cfg.Archive.Path
	}

	store, err := archive.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game archive: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	games, err := store.RecentGames(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	if len(games) == 0 {
		fmt.Println("No games archived yet.")
		fmt.Println()
		fmt.Println("Play 'icefloe play' to record the first one.")
		return
	}

	fmt.Println("Recent games:")
	fmt.Println()
	fmt.Printf("  %-16s  %-10s  %-5s  %-7s  %-7s  %s\n", "Date", "Strategy", "Team", "Score", "Result", "Room")
	fmt.Printf("  %-16s  %-10s  %-5s  %-7s  %-7s  %s\n", "----", "--------", "----", "-----", "------", "----")

	for _, g := range games {
		result := "draw"
		switch {
		case g.Won():
			result = "won"
		case g.Winner != "" && g.OwnTeam != "":
			result = "lost"
		case g.Winner != "":
			result = g.Winner
		}
		fmt.Printf("  %-16s  %-10s  %-5s  %3d:%-3d  %-7s  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"),
			g.Strategy, g.OwnTeam, g.ScoreOne, g.ScoreTwo, result, g.RoomID)
	}

	if flagHistStrategy != "" {
		if !logic.Exists(flagHistStrategy) {
			fmt.Fprintf(os.Stderr, "\nWarning: unknown strategy %q\n", flagHistStrategy)
			return
		}
		wins, total, err := store.WinRate(flagHistStrategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing win rate: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		if total == 0 {
			fmt.Printf("No games recorded for %q yet.\n", flagHistStrategy)
		} else {
			fmt.Printf("%s: %d/%d won (%.0f%%)\n",
				flagHistStrategy, wins, total, float64(wins)/float64(total)*100)
		}
	}
}
