// Package console implements the in-game debug console overlay.
package console

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/portalhub/internal/application/event"
)

const header = "Console\n"

// DefaultMaxLines is the number of lines shown before the buffer is wiped
const DefaultMaxLines = 10

// Console is a small scrolling log shown on top of the game.
// Lines arrive through a queue so any system can write to it.
type Console struct {
	queue    *event.Queue[string]
	logger   *log.Logger
	buf      strings.Builder
	maxLines int
	visible  bool
}

// New creates a hidden console reading from queue.
// Every drained line is also written to logger at info level.
func New(queue *event.Queue[string], logger *log.Logger, maxLines int) *Console {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	c := &Console{
		queue:    queue,
		logger:   logger,
		maxLines: maxLines,
	}
	c.buf.WriteString(header)
	return c
}

// Toggle flips visibility
func (c *Console) Toggle() {
	c.visible = !c.visible
	c.logger.Info("console toggled", "visible", c.visible)
}

// Visible reports whether the console is drawn
func (c *Console) Visible() bool {
	return c.visible
}

// Text returns the current buffer contents
func (c *Console) Text() string {
	return c.buf.String()
}

// Push appends one line. A full buffer is wiped before the line is added.
func (c *Console) Push(line string) {
	if strings.Count(c.buf.String(), "\n") >= c.maxLines {
		c.buf.Reset()
	}
	c.buf.WriteString(line)
	if !strings.HasSuffix(line, "\n") {
		c.buf.WriteByte('\n')
	}
}

// Update drains the queue into the buffer
func (c *Console) Update() {
	for _, line := range c.queue.Drain() {
		c.logger.Info(strings.TrimSuffix(line, "\n"))
		c.Push(line)
	}
}

// Draw prints the buffer in the top-left corner when visible
func (c *Console) Draw(screen *ebiten.Image) {
	if !c.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, c.buf.String(), 4, 4)
}
