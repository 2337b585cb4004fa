package storage

import (
	"context"
	"io"
)

// Uploader stores a file on the media host and returns the URL clients can
// fetch it from. Only the URL is persisted in the database.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, folder string) (string, error)
}
