package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/portalhub/internal/application/system"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("replay: no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for a session on the given level and screen
func NewRecorder(level string, screenW, screenH int, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Level:     level,
			ScreenW:   screenW,
			ScreenH:   screenH,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  len(r.data.Frames),
		U:  input.Up,
		D:  input.Down,
		L:  input.Left,
		R:  input.Right,
		Fi: input.Fire,
		CX: input.CursorX,
		CY: input.CursorY,
		CO: input.CursorOK,
		WY: input.WheelY,
		TC: input.ToggleConsole,
		CH: input.ConsoleHello,
		BU: input.BrightnessUp,
		BD: input.BrightnessDown,
	})
}

// RecordTunables stores the settings in effect from the next frame on.
// Before the first frame they become the session's starting tunables.
func (r *Recorder) RecordTunables(t Tunables) {
	if !r.recording {
		return
	}
	if len(r.data.Frames) == 0 {
		r.data.Tunables = &t
		r.data.Reloads = nil
		return
	}
	r.data.Reloads = append(r.data.Reloads, TunablesChange{F: len(r.data.Frames), Tunables: t})
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
