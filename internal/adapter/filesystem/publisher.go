package filesystem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"toc-generator/internal/domain/ports"
)

const lockRetryDelay = 100 * time.Millisecond

// FilePublisher replaces the output document atomically while holding a lock file.
type FilePublisher struct {
	path   string
	lock   *flock.Flock
	logger ports.Logger
}

var _ ports.Publisher = (*FilePublisher)(nil)

// NewFilePublisher creates a publisher for path. The lock file is kept in the
// system temp directory so nothing but the document appears in the output tree.
func NewFilePublisher(path string, logger ports.Logger) *FilePublisher {
	return &FilePublisher{
		path:   path,
		lock:   flock.New(lockPathFor(path)),
		logger: logger,
	}
}

// lockPathFor derives a lock file name from the absolute output path, so every
// run targeting the same document contends on the same lock.
func lockPathFor(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(filepath.Clean(path)))
	return filepath.Join(os.TempDir(), "toc-"+hex.EncodeToString(sum[:8])+".lock")
}

// Publish creates or truncates the output document with content.
func (p *FilePublisher) Publish(ctx context.Context, content []byte) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	locked, err := p.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock output: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock output: %s is held by another run", p.lock.Path())
	}
	defer func() {
		if err := p.lock.Unlock(); err != nil && p.logger != nil {
			p.logger.Error(ctx, "failed to release output lock", "error", err)
		}
	}()

	if err := writeAtomic(p.path, content); err != nil {
		return err
	}

	if p.logger != nil {
		p.logger.Info(ctx, "document written", "path", p.path, "bytes", len(content))
	}
	return nil
}

// writeAtomic writes content to a temp file in the target directory and renames it over path.
func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
