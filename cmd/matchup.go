package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/matchup/core/engine"
	"github.com/ingyamilmolinar/matchup/internal/audio"
	"github.com/ingyamilmolinar/matchup/internal/config"
	game_log "github.com/ingyamilmolinar/matchup/internal/log"
	"github.com/ingyamilmolinar/matchup/internal/pairs"
	"github.com/ingyamilmolinar/matchup/internal/ui"
)

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}
	binder := config.NewBinder(cfg)

	root := &cobra.Command{
		Use:          "matchup",
		Short:        "Match items across two columns by drawing lines",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return binder.Load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cfg)
		},
	}
	binder.RegisterFlags(root)
	root.AddCommand(newSnapshotCmd(cfg), newVersionCmd())
	return root
}

func newLogger(cfg *config.Config) *game_log.Logger {
	logger := game_log.New(os.Stderr, cfg.Level())
	logger.SetTimestamps(cfg.Timestamps)
	return logger
}

// newEngine builds an engine over the configured pairs. A zero seed is
// replaced by the clock; the seed in use is logged so a layout can be
// reproduced.
func newEngine(cfg *config.Config, logger *game_log.Logger) *engine.Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Infof("shuffle seed %d", seed)
	left, right := pairs.Columns(cfg.Pairs)
	shuffler := pairs.NewShuffler(seed)
	return engine.New(logger, left, right, ui.SurfaceW, ui.SurfaceH, engine.WithShuffle(shuffler.Shuffle))
}

func runPlay(cfg *config.Config) error {
	logger := newLogger(cfg)
	g := ui.New(logger, newEngine(cfg, logger), audio.NewPlayer(logger, cfg.Sound))
	if cfg.Panel {
		ui.RunFynePanel(g)
	}

	g.SetScale(cfg.Scale)
	w, h := g.ScreenSize()
	ebiten.SetWindowSize(int(float64(w)*cfg.Scale), int(float64(h)*cfg.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Matchup")
	return ebiten.RunGame(g)
}
