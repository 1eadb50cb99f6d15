// Package blob is the boundary to the external blob-storage collaborator.
// The inventory core only ever sees the opaque relative paths a Store hands
// back; it never touches image bytes beyond streaming them through Save.
package blob

import (
	"context"
	"io"
)

// MaxBlobSize is the upload cap enforced at this boundary.
const MaxBlobSize = 5 << 20

type Store interface {
	// Save persists the content and returns an opaque relative path.
	Save(ctx context.Context, ownerID uint, filename string, content io.Reader, size int64) (string, error)
	// Delete removes a previously saved blob.
	Delete(ctx context.Context, storagePath string) error
}
