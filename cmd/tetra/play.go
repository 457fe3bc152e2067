package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/storage"
	"github.com/vovakirdan/tui-tetra/internal/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStartLevel int
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/Right/A/D - Move piece
  Up/X/W         - Rotate clockwise
  Z              - Rotate counter-clockwise
  Down/S         - Soft drop
  Space          - Hard drop
  P              - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 4
  hard   - Start at level 7

Examples:
  tetra play
  tetra play --difficulty hard
  tetra play --level 5
  tetra play --config ./my-tetra.yaml
  tetra play --player alice`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Starting level (overrides difficulty preset)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with scores")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	if flagStartLevel > 0 {
		tetris.SetStartLevel(flagStartLevel)
	}

	game := tetris.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, player)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
