package web

import (
	"context"
	"time"

	"github.com/vovakirdan/inertia/internal/core"
	"github.com/vovakirdan/inertia/internal/engine"
)

// RunFeed drives the level at the given tick rate without player input,
// broadcasting a snapshot every tick, until the context is cancelled.
// When a run ends the level restarts so the feed never goes dark.
func RunFeed(ctx context.Context, level *engine.Level, srv *Server, tickRate int) error {
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1.0 / float64(tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	idle := core.NewInputFrame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			result := level.Step(idle, dt)
			if err := srv.Broadcast(level.Snapshot()); err != nil {
				return err
			}
			if result.Outcome != engine.OutcomeContinue {
				level.Reset()
			}
		}
	}
}
