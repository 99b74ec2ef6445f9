// Package render shows canvases on a terminal screen and drives frame-based
// animations.
package render

import (
	"asciigfx/canvas"
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Display draws canvases onto a tcell screen.
type Display struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewDisplay wraps an initialised screen.
func NewDisplay(screen tcell.Screen) *Display {
	return &Display{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// OpenDisplay initialises the controlling terminal. Close must be called to
// restore it.
func OpenDisplay() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise screen: %w", err)
	}
	return NewDisplay(screen), nil
}

// Screen returns the underlying tcell screen.
func (d *Display) Screen() tcell.Screen {
	return d.screen
}

// Show clears the screen and draws the canvas from the top-left corner.
// Cells beyond the screen edge are dropped by the screen.
func (d *Display) Show(c *canvas.Canvas) error {
	if c == nil {
		return fmt.Errorf("canvas is nil")
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("canvas has a drawing error: %w", err)
	}

	d.screen.Clear()
	for y, row := range c.Matrix() {
		for x, r := range row {
			d.screen.SetContent(x, y, r, nil, d.style)
		}
	}
	d.screen.Show()
	return nil
}

// WaitKey blocks until a key is pressed or ctx is done.
func (d *Display) WaitKey(ctx context.Context) error {
	events, stop := d.events()
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.handle(ev) {
				return nil
			}
		}
	}
}

// Close restores the terminal.
func (d *Display) Close() {
	d.screen.Fini()
}

// events streams screen events until stop is called.
func (d *Display) events() (<-chan tcell.Event, func()) {
	ch := make(chan tcell.Event)
	quit := make(chan struct{})
	go d.screen.ChannelEvents(ch, quit)
	return ch, func() { close(quit) }
}

// handle reacts to a screen event and reports whether it was a key press.
func (d *Display) handle(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey:
		return true
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}
