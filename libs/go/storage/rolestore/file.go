package rolestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"go.uber.org/zap"
)

var _ interfaces.RoleBackend = (*FileBackend)(nil)

// FileBackend stores the role configuration as a JSON file. Writes go through
// a temp file and rename so readers never observe a partial blob.
type FileBackend struct {
	path   string
	logger *zap.Logger
}

// NewFileBackend creates the parent directory of path if needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("role store path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role store path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create role store directory: %w", err)
	}
	return &FileBackend{
		path:   abs,
		logger: logger.Named(logger.ComponentRoles, zap.String("role_store", "file"), zap.String("path", abs)),
	}, nil
}

// Path returns the absolute file path.
func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Read(_ context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read role store file: %w", err)
	}
	return data, true, nil
}

func (b *FileBackend) Write(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".roles-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("failed to replace role store file: %w", err)
	}
	return nil
}

func (b *FileBackend) Delete(_ context.Context) error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete role store file: %w", err)
	}
	return nil
}

// Watch observes the parent directory, since rename-based writes replace the
// inode and a watch on the file itself would be lost after the first save.
func (b *FileBackend) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(b.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch role store directory: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != b.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					notify(out)
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				b.logger.Warn("Role store watcher error", zap.Error(werr))
			}
		}
	}()
	return out, nil
}

func (b *FileBackend) Close() error { return nil }
