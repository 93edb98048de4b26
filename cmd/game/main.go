// game runs the portal hub prototype.
//
// Usage:
//
//	game                  - Start at the menu
//	game --skip-menu      - Start playing immediately
//	game replay <file>    - Re-run a recorded session without a window
//
// Global flags:
//
//	--config-dir <dir>   - Read game.yaml from dir instead of the embedded copy
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	gameassets "github.com/younwookim/portalhub/assets"
	"github.com/younwookim/portalhub/internal/application/game"
	"github.com/younwookim/portalhub/internal/application/scene"
	"github.com/younwookim/portalhub/internal/application/scene/gameover"
	"github.com/younwookim/portalhub/internal/application/scene/menu"
	"github.com/younwookim/portalhub/internal/application/scene/playing"
	"github.com/younwookim/portalhub/internal/application/state"
	"github.com/younwookim/portalhub/internal/infrastructure/assets"
	"github.com/younwookim/portalhub/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string

	flagSkipMenu bool
	flagWatch    bool
	flagRecord   string
)

// recordAuto is the --record value when no file name is given
const recordAuto = "auto"

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("portalhub failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Portal Hub - a top-down ECS prototype",
	Long: `Walk around the hub, shoot missiles at the cursor and avoid the spikes.
Every spike hit darkens the world; when everything is black the game is over.

Controls:
  W/A/S/D        - Move
  Click/Space    - Fire toward the cursor
  Wheel          - Zoom
  ` + "`" + `              - Toggle console
  \              - Print "Hello" to the console
  . / ,          - Brighten / darken

Examples:
  game
  game --skip-menu --log-level debug
  game --config-dir ./configs --watch
  game --skip-menu --record=session.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory containing game.yaml (default: embedded config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start in the game instead of the menu")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tunables when game.yaml changes (requires --config-dir)")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record=replay.json; bare --record picks a name)")
	rootCmd.Flags().Lookup("record").NoOptDefVal = recordAuto

	rootCmd.AddCommand(replayCmd)
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "portalhub",
		Level:           lvl,
	}), nil
}

// newConfigLoader reads from dir, or from the embedded configs when dir is empty
func newConfigLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func runGame(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	loader, err := newConfigLoader(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	textures, err := assets.LoadTextures(gameassets.FS, cfg.Sprites)
	if err != nil {
		return fmt.Errorf("failed to load textures: %w", err)
	}

	var watcher *config.Watcher
	if flagWatch {
		if flagConfigDir == "" {
			return errors.New("--watch requires --config-dir")
		}
		watcher, err = config.NewWatcher(flagConfigDir)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", flagConfigDir, err)
		}
		defer func() { _ = watcher.Close() }()
		logger.Info("watching config", "dir", flagConfigDir)
	}

	initial := state.StateMenu
	if flagSkipMenu {
		initial = state.StateGame
	}
	states := state.NewMachine(initial)

	routes := game.Routes{
		state.StateMenu: func() scene.Scene {
			return menu.New(states, logger)
		},
		state.StateGame: func() scene.Scene {
			p := playing.New(cfg, states, textures, logger)
			if watcher != nil {
				p.WatchConfig(watcher, loader)
			}
			switch flagRecord {
			case "":
			case recordAuto:
				p.Record("")
			default:
				p.Record(flagRecord)
			}
			return p
		},
		state.StateGameOver: func() scene.Scene {
			return gameover.New(states, cfg.Window.Width, cfg.Window.Height, logger)
		},
	}

	g, err := game.NewRouted(states, routes, cfg.Window.Width, cfg.Window.Height, logger)
	if err != nil {
		return err
	}
	g.SetDT(1 / float64(cfg.Window.Framerate))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.Framerate)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.Info("starting", "state", initial, "config", loader.BasePath())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("bye")
	return nil
}
