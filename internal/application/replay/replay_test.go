package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalhub/internal/application/system"
	"github.com/younwookim/portalhub/internal/infrastructure/config"
)

// idleFrames creates n frames with the cursor resting at x, y
func idleFrames(n int, x, y float64) []FrameInput {
	frames := make([]FrameInput, n)
	for i := range frames {
		frames[i] = FrameInput{F: i, CX: x, CY: y, CO: true}
	}
	return frames
}

func TestFrameInput_OmitsIdleKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, CX: 10, CY: 20})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"cx":10,"cy":20}`, string(data))
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder("Hub", 320, 240, 1.0/60)

	rec.RecordFrame(system.InputState{Up: true, CursorX: 5, CursorY: 6, CursorOK: true})
	rec.RecordFrame(system.InputState{Fire: true, WheelY: -1, BrightnessDown: true})

	require.Equal(t, 2, rec.FrameCount())
	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "Hub", data.Level)
	assert.Equal(t, 320, data.ScreenW)
	assert.Equal(t, 240, data.ScreenH)

	assert.Equal(t, FrameInput{F: 0, U: true, CX: 5, CY: 6, CO: true}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 1, Fi: true, WY: -1, BD: true}, data.Frames[1])
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder("Hub", 320, 240, 1.0/60)
	rec.RecordFrame(system.InputState{})
	rec.Stop()
	rec.RecordFrame(system.InputState{})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("Hub", 320, 240, 1.0/60)

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder("Hub", 320, 240, 1.0/60)
	want := []system.InputState{
		{Left: true, CursorX: 1, CursorY: 2, CursorOK: true},
		{Right: true, Down: true, ToggleConsole: true, ConsoleHello: true},
		{Fire: true, CursorX: 300, CursorY: 10, CursorOK: true, BrightnessUp: true},
	}
	for _, in := range want {
		rec.RecordFrame(in)
	}

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "Hub", data.Level)
	assert.InDelta(t, 1.0/60, data.DT, 1e-12)

	r := NewReplayer(*data)
	for i, in := range want {
		got, ok := r.GetInput()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, in, got, "frame %d", i)
	}
	_, ok := r.GetInput()
	assert.False(t, ok)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})

	t.Run("unknown version", func(t *testing.T) {
		path := filepath.Join(dir, "old.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"0.1","frames":[]}`), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "unsupported replay version")
	})
}

func TestReplayer_Frames(t *testing.T) {
	r := NewReplayer(ReplayData{Version: Version, Frames: idleFrames(3, 100, 50)})

	assert.Equal(t, 3, r.TotalFrames())
	assert.Equal(t, 0, r.CurrentFrame())

	in, ok := r.GetInput()
	require.True(t, ok)
	assert.Equal(t, 100.0, in.CursorX)
	assert.True(t, in.CursorOK)
	assert.Equal(t, 1, r.CurrentFrame())

	r.GetInput()
	r.GetInput()
	_, ok = r.GetInput()
	assert.False(t, ok)
	assert.Equal(t, 3, r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	_, ok = r.GetInput()
	assert.True(t, ok)
}

func TestTunables_RoundTrip(t *testing.T) {
	cfg := config.Default()
	tun := TunablesFrom(cfg)
	tun.MoveDelta = 250
	tun.Tolerance = 1

	out := tun.Apply(cfg)

	assert.Equal(t, tun, TunablesFrom(out))
	assert.Equal(t, 100.0, cfg.Movement.Delta, "Apply does not modify its input")
	assert.Equal(t, cfg.Window, out.Window)
}

func TestRecorder_RecordTunables(t *testing.T) {
	rec := NewRecorder("Hub", 320, 240, 1.0/60)
	start := TunablesFrom(config.Default())

	rec.RecordTunables(start)
	rec.RecordFrame(system.InputState{})
	rec.RecordFrame(system.InputState{})

	reloaded := start
	reloaded.BrightnessDelta = 0.5
	rec.RecordTunables(reloaded)
	rec.RecordFrame(system.InputState{})

	path := filepath.Join(t.TempDir(), "tuned.json")
	require.NoError(t, rec.Save(path))
	data, err := LoadReplay(path)
	require.NoError(t, err)

	require.NotNil(t, data.Tunables)
	assert.Equal(t, start, *data.Tunables)

	r := NewReplayer(*data)
	_, ok := r.ReloadAt(0)
	assert.False(t, ok)
	got, ok := r.ReloadAt(2)
	require.True(t, ok)
	assert.Equal(t, 0.5, got.BrightnessDelta)

	rec.Stop()
	rec.RecordTunables(start)
	assert.Len(t, rec.Data().Reloads, 1, "stopped recorders ignore reloads")
}
