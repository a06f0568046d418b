package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStore keeps uploads on the serving host under a static directory.
type LocalStore struct {
	Dir     string
	URLPath string
}

// NewLocalStore returns a store writing to dir and serving under urlPath.
func NewLocalStore(dir, urlPath string) *LocalStore {
	return &LocalStore{Dir: dir, URLPath: urlPath}
}

// Upload writes the file to disk and returns its static URL.
func (s *LocalStore) Upload(_ context.Context, name string, r io.Reader, _ int64, _ string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	target := filepath.Join(s.Dir, name)
	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path.Join(s.URLPath, name), nil
}
