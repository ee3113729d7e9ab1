package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shapefall/shapefall/internal/platform/tui"
	"github.com/shapefall/shapefall/internal/score"
	"github.com/shapefall/shapefall/internal/storage"
)

var (
	flagInteractive  bool
	flagScoresPlain  bool
	flagResetHistory bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Show the leaderboard and the all-time best score.

Examples:
  shapefall scores
  shapefall scores --interactive
  shapefall scores --plain-store
  shapefall scores --reset`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse the leaderboard in a TUI")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain-store", false, "Read scores from plain text files instead of SQLite")
	scoresCmd.Flags().BoolVar(&flagResetHistory, "reset", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	var store score.Store

	if flagScoresPlain {
		fs, err := storage.OpenFileStore("~/.shapefall")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening score files: %v\n", err)
			os.Exit(1)
		}
		store = fs
	} else {
		db, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if flagResetHistory {
			if err := db.Reset(); err != nil {
				fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Scores cleared.")
			return
		}
		store = db
	}

	entries, err := store.Leaderboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading leaderboard: %v\n", err)
		os.Exit(1)
	}
	high, err := store.HighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		os.Exit(1)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(entries, high, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet. Play a round to set one!")
		return
	}

	fmt.Println("SHAPEFALL LEADERBOARD")
	fmt.Println("---------------------")
	for i, e := range entries {
		fmt.Printf("%2d. %-14s %6d  %s\n", i+1, e.Name, e.Score, e.Date)
	}
	fmt.Printf("\nBest score: %d\n", high)
}
