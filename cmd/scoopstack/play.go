package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scoopstack/internal/config"
	"scoopstack/internal/core"
	"scoopstack/internal/game"
	"scoopstack/internal/platform/tui"
	"scoopstack/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagInvincible bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Up/Down (w/s, k/j)     - Select an equation
  Left/Right (a/d, h/l)  - Select an answer
  Enter/Space            - Submit the answer
  P/Esc                  - Pause
  R                      - Restart (after game over)
  Q/Ctrl+C               - Quit

Difficulty options:
  relaxed - Slower placements, more room on the cone
  normal  - Standard tuning
  exam    - Faster placements, smaller cone, more sprints

Examples:
  scoopstack play
  scoopstack play --difficulty exam
  scoopstack play --invincible
  scoopstack play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: relaxed, normal, exam")
	playCmd.Flags().BoolVar(&flagInvincible, "invincible", false, "Practice mode: never lose")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want relaxed, normal or exam)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}
	if flagInvincible {
		gameCfg.Session.Invincible = true
	}

	g, err := game.New(gameCfg.Session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 100, 30 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
