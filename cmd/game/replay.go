package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/portalhub/internal/application/replay"
	"github.com/younwookim/portalhub/internal/application/scene/playing"
	"github.com/younwookim/portalhub/internal/application/state"
	"github.com/younwookim/portalhub/internal/application/system"
	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session without a window",
	Long: `Feed a recording made with --record through the gameplay systems and
print where the session ended up.

Gameplay tunables (movement, zoom, missile speed, collision tolerance,
brightness) come from the recording, including reloads made with --watch.
Recordings without them replay with the current config.

Examples:
  game --skip-menu --record=session.json
  game replay session.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// Summary describes the world after a replay
type Summary struct {
	Frames     int
	PlayerX    float64
	PlayerY    float64
	Missiles   int
	Brightness float64
	State      state.AppState
}

func runReplay(cmd *cobra.Command, args []string) error {
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

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	sum, err := simulate(cfg, *data, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "frames:     %d\n", sum.Frames)
	fmt.Fprintf(cmd.OutOrStdout(), "player:     (%.2f, %.2f)\n", sum.PlayerX, sum.PlayerY)
	fmt.Fprintf(cmd.OutOrStdout(), "missiles:   %d\n", sum.Missiles)
	fmt.Fprintf(cmd.OutOrStdout(), "brightness: %.2f\n", sum.Brightness)
	fmt.Fprintf(cmd.OutOrStdout(), "state:      %s\n", sum.State)
	return nil
}

// simulate runs the recorded frames through a headless playing scene.
// It stops early when the session reaches game over.
func simulate(cfg *config.GameConfig, data replay.ReplayData, logger *log.Logger) (Summary, error) {
	if data.Level != level.NewHub().Kind.String() {
		return Summary{}, fmt.Errorf("replay: unsupported level %q", data.Level)
	}

	if data.Tunables != nil {
		cfg = data.Tunables.Apply(cfg)
	}
	run := *cfg
	if data.ScreenW > 0 && data.ScreenH > 0 {
		run.Window.Width, run.Window.Height = data.ScreenW, data.ScreenH
	}
	dt := data.DT
	if dt <= 0 {
		dt = 1 / float64(run.Window.Framerate)
	}

	states := state.NewMachine(state.StateGame)
	p := playing.New(&run, states, nil, logger)
	r := replay.NewReplayer(data)
	p.SetInput(func() system.InputState {
		in, _ := r.GetInput()
		return in
	})

	p.OnEnter()
	defer p.OnExit()

	for r.CurrentFrame() < r.TotalFrames() {
		if tun, ok := r.ReloadAt(r.CurrentFrame()); ok {
			p.ApplyConfig(tun.Apply(&run))
		}
		if _, err := p.Update(dt); err != nil {
			return Summary{}, fmt.Errorf("frame %d: %w", r.CurrentFrame(), err)
		}
		if _, to, ok := states.Apply(); ok && to == state.StateGameOver {
			logger.Info("replay reached game over", "frame", r.CurrentFrame())
			break
		}
	}

	player, _ := p.World().Player()
	return Summary{
		Frames:     r.CurrentFrame(),
		PlayerX:    player.X,
		PlayerY:    player.Y,
		Missiles:   p.World().CountMissiles(),
		Brightness: p.Materials().Get(material.Player).R,
		State:      states.Current(),
	}, nil
}
