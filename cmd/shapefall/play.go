package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shapefall/shapefall/internal/config"
	"github.com/shapefall/shapefall/internal/core"
	"github.com/shapefall/shapefall/internal/game"
	"github.com/shapefall/shapefall/internal/platform/tui"
	"github.com/shapefall/shapefall/internal/score"
	"github.com/shapefall/shapefall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlainStore bool
	flagVerbose    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Shapefall",
	Long: `Start a local game session.

Controls:
  Mouse      - Click shapes
  P          - Pause
  R          - Restart (after game over)
  Esc        - Back to menu
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  shapefall play
  shapefall play --difficulty hard
  shapefall play --config ./my-shapefall.yaml
  shapefall play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagPlainStore, "plain-store", false, "Persist scores as plain text files instead of SQLite")
	playCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log debug events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "shapefall"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		// The alt screen owns the terminal; keep quiet unless asked.
		logger.SetLevel(log.FatalLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, closeStore := openStore(logger)
	defer closeStore()

	scores := score.NewManager(store, score.Config{
		Threshold:  cfg.Combo.Threshold,
		Increment:  cfg.Combo.Increment,
		MaxEntries: cfg.Leaderboard.MaxEntries,
	}, logger)

	g := game.New(cfg, rt, scores, logger)

	if err := tui.Run(g, rt, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the configured score backend. Failures degrade to no
// persistence; the game still runs.
func openStore(logger *log.Logger) (score.Store, func()) {
	if flagPlainStore {
		fs, err := storage.OpenFileStore("~/.shapefall")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open score files: %v\n", err)
			return nil, func() {}
		}
		return fs, func() {}
	}

	db, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil, func() {}
	}
	return db, func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("closing score store", "error", closeErr)
		}
	}
}
