package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalUploader writes files under a directory served at /uploads. Used when
// no media host is configured, and by tests.
type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) Upload(_ context.Context, r io.Reader, folder string) (string, error) {
	if err := os.MkdirAll(filepath.Join(u.dir, folder), 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString()
	path := filepath.Join(u.dir, folder, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return "/uploads/" + folder + "/" + name, nil
}
