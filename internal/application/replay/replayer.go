package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/portalhub/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Up:             fi.U,
		Down:           fi.D,
		Left:           fi.L,
		Right:          fi.R,
		Fire:           fi.Fi,
		CursorX:        fi.CX,
		CursorY:        fi.CY,
		CursorOK:       fi.CO,
		WheelY:         fi.WY,
		ToggleConsole:  fi.TC,
		ConsoleHello:   fi.CH,
		BrightnessUp:   fi.BU,
		BrightnessDown: fi.BD,
	}, true
}

// ReloadAt returns the tunables recorded to take effect before frame f
func (r *Replayer) ReloadAt(f int) (Tunables, bool) {
	for i := len(r.data.Reloads) - 1; i >= 0; i-- {
		if r.data.Reloads[i].F == f {
			return r.data.Reloads[i].Tunables, true
		}
	}
	return Tunables{}, false
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the session being replayed
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
