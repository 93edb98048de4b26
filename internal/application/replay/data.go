// Package replay records per-frame input and plays it back.
package replay

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	U  bool    `json:"u,omitempty"`  // Up
	D  bool    `json:"d,omitempty"`  // Down
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	Fi bool    `json:"fi,omitempty"` // Fire
	CX float64 `json:"cx"`           // CursorX
	CY float64 `json:"cy"`           // CursorY
	CO bool    `json:"co,omitempty"` // CursorOK
	WY float64 `json:"wy,omitempty"` // WheelY
	TC bool    `json:"tc,omitempty"` // ToggleConsole
	CH bool    `json:"ch,omitempty"` // ConsoleHello
	BU bool    `json:"bu,omitempty"` // BrightnessUp
	BD bool    `json:"bd,omitempty"` // BrightnessDown
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	ScreenW   int          `json:"screenW"`
	ScreenH   int          `json:"screenH"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`

	// Tunables at the start of the session; nil in recordings made
	// without them, which replay with the current config.
	Tunables *Tunables        `json:"tunables,omitempty"`
	Reloads  []TunablesChange `json:"reloads,omitempty"`
}
