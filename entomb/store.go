package entomb

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/flatcol"
	"github.com/hupe1980/flatcol/blobstore"
)

// Store persists snapshots through a blobstore backend.
type Store struct {
	blobs   blobstore.BlobStore
	limiter *rate.Limiter
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger. The default logs text to stderr at info level.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithWriteLimit throttles snapshot writes to bytesPerSec. Writes larger
// than one second's budget are paced in chunks.
func WithWriteLimit(bytesPerSec int) StoreOption {
	return func(s *Store) {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
}

// NewStore creates a snapshot store over the given blob backend.
func NewStore(blobs blobstore.BlobStore, opts ...StoreOption) *Store {
	s := &Store{blobs: blobs}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return s
}

// Save entombs the stack and writes it under name.
func (s *Store) Save(ctx context.Context, name string, stack *flatcol.Strings) error {
	start := time.Now()
	buf := WriteSnapshot(stack)

	if err := s.throttle(ctx, len(buf)); err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, name, buf); err != nil {
		s.logger.ErrorContext(ctx, "snapshot save failed",
			"name", name,
			"error", err,
		)
		return fmt.Errorf("entomb: save %q: %w", name, err)
	}

	s.logger.InfoContext(ctx, "snapshot saved",
		"name", name,
		"rows", stack.Len(),
		"bytes", len(buf),
		"elapsed", time.Since(start),
	)
	return nil
}

// Load opens the snapshot stored under name. The snapshot borrows the blob's
// memory where the backend allows it and owns the blob handle either way;
// closing the snapshot releases it.
func (s *Store) Load(ctx context.Context, name string) (*Snapshot, error) {
	blob, err := s.blobs.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("entomb: load %q: %w", name, err)
	}

	data, err := blobstore.ReadAll(blob)
	if err != nil {
		blob.Close()
		return nil, fmt.Errorf("entomb: load %q: %w", name, err)
	}
	snap, err := ExhumeBytes(data)
	if err != nil {
		blob.Close()
		s.logger.ErrorContext(ctx, "snapshot load failed",
			"name", name,
			"error", err,
		)
		return nil, fmt.Errorf("entomb: load %q: %w", name, err)
	}
	snap.closer = blob

	s.logger.DebugContext(ctx, "snapshot loaded",
		"name", name,
		"rows", snap.Len(),
	)
	return snap, nil
}

// Delete removes the snapshot stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.blobs.Delete(ctx, name)
}

// List returns the names of stored snapshots with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return s.blobs.List(ctx, prefix)
}

func (s *Store) throttle(ctx context.Context, n int) error {
	if s.limiter == nil {
		return nil
	}
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
