package render

import (
	"asciigfx/canvas"
	"context"
	"fmt"
	"time"
)

// UpdateFunc draws frame number frame onto c. Returning false ends the animation.
type UpdateFunc func(c *canvas.Canvas, frame uint64) bool

// Animator redraws a canvas at a fixed frame rate.
type Animator struct {
	Display *Display
	Canvas  *canvas.Canvas
	Update  UpdateFunc
	FPS     int

	// MaxFrames stops the animation after that many frames; 0 means no limit.
	MaxFrames uint64
}

// Run calls Update and shows the canvas once per frame until Update returns
// false, MaxFrames is reached, a key is pressed or ctx is done. It returns the
// number of frames shown.
func (a *Animator) Run(ctx context.Context) (uint64, error) {
	if a.Update == nil {
		return 0, fmt.Errorf("animator has no update function")
	}
	if a.FPS <= 0 {
		return 0, fmt.Errorf("invalid frame rate: %d", a.FPS)
	}

	events, stop := a.Display.events()
	defer stop()

	ticker := time.NewTicker(time.Second / time.Duration(a.FPS))
	defer ticker.Stop()

	var frame uint64
	for a.MaxFrames == 0 || frame < a.MaxFrames {
		if !a.Update(a.Canvas, frame) {
			break
		}
		if err := a.Display.Show(a.Canvas); err != nil {
			return frame, fmt.Errorf("frame %d: %w", frame, err)
		}
		frame++

	wait:
		for {
			select {
			case <-ctx.Done():
				return frame, ctx.Err()
			case ev, ok := <-events:
				if !ok {
					return frame, nil
				}
				if a.Display.handle(ev) {
					return frame, nil
				}
			case <-ticker.C:
				break wait
			}
		}
	}
	return frame, nil
}
