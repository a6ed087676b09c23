package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrClosed is returned by Writer.Save after Close.
var ErrClosed = errors.New("writer closed")

// saveTimeout bounds a single background write.
const saveTimeout = 5 * time.Second

// Writer persists states in the background so callers never wait on I/O.
// Only the latest pending state is kept; older unsaved states are dropped.
// Write failures are logged and swallowed.
type Writer struct {
	repo   StateRepo
	logger *slog.Logger

	mu      sync.Mutex
	pending chan State
	closed  bool
	done    chan struct{}
}

// NewWriter starts a background writer over repo.
func NewWriter(repo StateRepo, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Writer{
		repo:    repo,
		logger:  logger,
		pending: make(chan State, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

// Save queues st for writing and returns immediately.
func (w *Writer) Save(_ context.Context, st State) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	select {
	case <-w.pending:
	default:
	}
	w.pending <- st
	return nil
}

// Close flushes the pending state and stops the writer.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.pending)
	w.mu.Unlock()

	<-w.done
	return nil
}

func (w *Writer) loop() {
	defer close(w.done)
	for st := range w.pending {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := w.repo.Save(ctx, st); err != nil {
			w.logger.Warn("persist state failed", "error", err)
		}
		cancel()
	}
}
