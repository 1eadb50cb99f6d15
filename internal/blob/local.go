package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"Stashed/internal/apperrors"
	"Stashed/internal/config"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalStore keeps blobs under a root directory, namespaced per owner. Paths
// handed out are relative to the root so the metadata stays portable across
// deployments.
type LocalStore struct {
	root string
}

func NewLocalStore(configuration *config.Configuration) Store {
	return &LocalStore{root: configuration.Storage.Path}
}

func (s *LocalStore) Save(ctx context.Context, ownerID uint, filename string, content io.Reader, size int64) (string, error) {
	extension := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[extension] {
		return "", &apperrors.ValidationError{Field: "file", Message: "unsupported image format"}
	}
	if size > MaxBlobSize {
		return "", &apperrors.ValidationError{Field: "file", Message: "file exceeds the 5 MB limit"}
	}

	relativePath := path.Join(fmt.Sprintf("%d", ownerID), uuid.NewString()+extension)
	fullPath := filepath.Join(s.root, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	written, err := io.Copy(file, io.LimitReader(content, MaxBlobSize+1))
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return "", err
	}
	if written > MaxBlobSize {
		_ = os.Remove(fullPath)
		return "", &apperrors.ValidationError{Field: "file", Message: "file exceeds the 5 MB limit"}
	}
	return relativePath, nil
}

func (s *LocalStore) Delete(ctx context.Context, storagePath string) error {
	if strings.Contains(storagePath, "..") {
		return fmt.Errorf("refusing storage path %q", storagePath)
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(storagePath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
