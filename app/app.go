// Package app wires the scanning core into a headless demo. The views are
// console implementations; swapping in real windowing and camera
// collaborators only replaces the edges built here.
package app

import (
	"context"
	"time"

	"github.com/soocke/docscan-go/debug"
	"github.com/soocke/docscan-go/domain/orientation"
)

const tick = 100 * time.Millisecond

// App drives the assembled container through a scripted run: screen appear,
// a mid-run rotation to landscape, auto-scan firing a capture, screen
// disappear, shutdown.
type App struct {
	c *Container
}

func NewApp(c *Container) *App { return &App{c: c} }

// Run executes the demo until a capture completes or ctx ends, then tears
// everything down. It blocks the calling goroutine.
func (a *App) Run(ctx context.Context) {
	c := a.c
	if c.Config.Debug {
		debug.StartGoroutineLogger(5*time.Second, c.Logger)
	}

	c.Screen.Appear()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	start := time.Now()
	rotated := false
	for done := false; !done; {
		select {
		case <-ctx.Done():
			done = true
		case now := <-ticker.C:
			c.Loop.Tick()
			if !rotated && now.Sub(start) > 2*time.Second {
				// Simulate the user turning the device sideways.
				c.Windows.Rotate(orientation.LandscapeRight)
				c.Tracker.OnOrientationChanged()
				rotated = true
			}
			if c.Results.Last() != nil {
				done = true
			}
		}
	}

	c.Screen.Disappear()
	c.Coordinator.Close()
	c.Session.Stop()
	c.Logger.Info("demo finished",
		"captured", c.Results.Last() != nil,
		"frames", c.Session.Stats().Frames,
	)
}
