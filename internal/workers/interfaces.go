// Package workers contains background jobs run by the terminal client.
package workers

import (
	"context"
	"time"
)

// NoteRefreshWorker periodically re-pulls the signed-in user's note list so
// the offline cache stays close to the server state between explicit
// refreshes.
type NoteRefreshWorker interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 1 minute if interval is zero or negative. Any previously
	// running worker is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
