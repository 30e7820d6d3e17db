package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/models"
)

// spyNoteService counts RefreshCache calls.
type spyNoteService struct {
	calls atomic.Int64
	err   error
}

func (s *spyNoteService) RefreshCache(_ context.Context, _ int64) error {
	s.calls.Add(1)
	return s.err
}

func (s *spyNoteService) List(_ context.Context, _ int64) ([]models.Note, bool, error) {
	return nil, false, nil
}

func (s *spyNoteService) Get(_ context.Context, _ int64) (models.Note, error) {
	return models.Note{}, nil
}

func (s *spyNoteService) Create(_ context.Context, _ int64, _ string) (models.Note, error) {
	return models.Note{}, nil
}

func (s *spyNoteService) Update(_ context.Context, _, _ int64, _ string) (models.Note, error) {
	return models.Note{}, nil
}

func (s *spyNoteService) Delete(_ context.Context, _, _ int64) error {
	return nil
}

func TestNoteRefreshWorker_Start_CallsRefreshCache(t *testing.T) {
	spy := &spyNoteService{}
	worker := NewNoteRefreshWorker(spy, logger.Nop())
	ctx := context.Background()

	worker.Start(ctx, 1, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	worker.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshCache should have ticked several times, got %d", got)
}

func TestNoteRefreshWorker_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyNoteService{}
	worker := NewNoteRefreshWorker(spy, logger.Nop())
	ctx := context.Background()

	worker.Start(ctx, 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	worker.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no ticks may happen after Stop")
}

func TestNoteRefreshWorker_Stop_WithoutStartIsNoop(t *testing.T) {
	worker := NewNoteRefreshWorker(&spyNoteService{}, logger.Nop())
	require.NotPanics(t, worker.Stop)
}

func TestNoteRefreshWorker_Restart_ReplacesPreviousRun(t *testing.T) {
	spy := &spyNoteService{}
	worker := NewNoteRefreshWorker(spy, logger.Nop())
	ctx := context.Background()

	worker.Start(ctx, 1, 10*time.Millisecond)
	worker.Start(ctx, 2, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	worker.Stop()

	assert.Greater(t, spy.calls.Load(), int64(0))
}

func TestNoteRefreshWorker_ContextCancelStops(t *testing.T) {
	spy := &spyNoteService{}
	worker := NewNoteRefreshWorker(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	worker.Start(ctx, 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, spy.calls.Load())

	worker.Stop()
}
