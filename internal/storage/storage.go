// Package storage abstracts the object store used for icon and image
// uploads. Uploads return a public URL; failures surface to the admin UI
// without retry.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ObjectStore persists an uploaded file and returns its public URL.
type ObjectStore interface {
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

// ObjectName derives a unique storage name from the original filename,
// keeping the extension so content type survives.
func ObjectName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
}
