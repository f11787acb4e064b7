package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileSlot stores each key as a JSON file under a data directory. Saves go
// through a temp file and rename so a crash never leaves a torn blob.
type FileSlot struct {
	dir    string
	logger *zap.Logger
}

// NewFileSlot creates the data directory if needed.
func NewFileSlot(dir string, logger *zap.Logger) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	logger.Info("using file storage", zap.String("dir", dir))
	return &FileSlot{dir: dir, logger: logger}, nil
}

func (f *FileSlot) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the blob for key, or ErrSlotEmpty when no file exists.
func (f *FileSlot) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return blob, nil
}

// Save overwrites the blob for key atomically.
func (f *FileSlot) Save(ctx context.Context, key string, blob []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Ping verifies the data directory is still accessible.
func (f *FileSlot) Ping(ctx context.Context) error {
	_, err := os.Stat(f.dir)
	return err
}

// Close is a no-op for file storage.
func (f *FileSlot) Close() {}
