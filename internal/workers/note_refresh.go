package workers

import (
	"context"
	"sync"
	"time"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/service"
)

type noteRefreshWorker struct {
	noteService service.ClientNoteService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNoteRefreshWorker creates a worker that calls RefreshCache on a ticker.
// The worker is idle until Start is called.
func NewNoteRefreshWorker(noteService service.ClientNoteService, logger *logger.Logger) NoteRefreshWorker {
	return &noteRefreshWorker{noteService: noteService, logger: logger}
}

func (w *noteRefreshWorker) Start(ctx context.Context, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Int64("user_id", userID).Dur("interval", interval).Msg("note refresh worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				// an unreachable server is routine here, the next tick retries
				if err := w.noteService.RefreshCache(workerCtx, userID); err != nil {
					w.logger.Debug().Err(err).Msg("background note refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the worker is not running.
func (w *noteRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
