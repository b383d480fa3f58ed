package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	fileSuffix = ".json"
	dirPerm    = 0o755
	filePerm   = 0o600
)

// FileKV stores each key as a file in one directory. Writes go to a temp file
// that is renamed into place, so readers never see a partial value.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV creates the directory if needed
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, errors.New("file storage: directory is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("file storage: create %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

// Dir returns the directory holding the values
func (f *FileKV) Dir() string {
	return f.dir
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+fileSuffix)
}

func (f *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("file storage: read %s: %w", key, err)
	}
	return data, nil
}

func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("file storage: temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("file storage: write %s: %w", key, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("file storage: chmod %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file storage: close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return fmt.Errorf("file storage: rename %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file storage: delete %s: %w", key, err)
	}
	return nil
}
