// flappy is a terminal rendition of the one-button bird game.
//
// Usage:
//
//	flappy                   - Play with the built-in defaults
//	flappy --config my.yaml  - Play with a custom config
//
// Flags:
//
//	--fps <rate>    - Simulation tick rate (default: 60)
//	--seed <value>  - RNG seed for reproducible obstacle sequences
//	--config <path> - Path to custom config YAML
//	--mute          - Disable background music
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a one-button bird game for your terminal",
	Long: `Flappy drops you into a scrolling obstacle course: tap to flap,
slip through the gaps, and chase your session's best score.

Controls:
  Space/Up/W  - Flap (configurable via config file)
  Q/Ctrl+C    - Quit

Examples:
  flappy
  flappy --seed 42
  flappy --config ./my-flappy.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})

	// Invalid configuration is fatal before the first tick.
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rt := core.DefaultRuntimeConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.TickRate <= 0 {
		return fmt.Errorf("fps must be positive, got %d", rt.TickRate)
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	g, err := game.New(cfg, rt.Seed)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Terminal size for the initial screen buffer; resizes arrive later
	// through Bubble Tea.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The run log is best effort: the game plays fine without it.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		store = nil
	}

	// So is audio: a missing sound device means a silent game, not a
	// broken one.
	var sound *audio.Manager
	if cfg.Audio.Enabled && !flagMute {
		sound = audio.NewManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
			sound = nil
		} else {
			sound.PlayMusic(float64(cfg.Audio.Tempo), cfg.Audio.Volume)
		}
	}

	runErr := tui.Run(g, store, sound, rt, width, height, logger)

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	return runErr
}
