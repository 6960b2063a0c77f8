package controller

import (
	"context"
	"log/slog"
	"time"
)

// RunSweeper invokes the completed-task cleanup on a fixed interval until
// the context ends. Failures are logged and the loop keeps going; a broken
// store should not take the process down with it.
func (c *Controller) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ok, msg := c.CleanupCompletedTasks(); !ok {
				slog.Warn("sweep_skipped", "reason", msg)
			}
		}
	}
}
