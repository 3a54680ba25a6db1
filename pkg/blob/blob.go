package blob

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists opaque blobs under relative paths. The value image
// attachment flow is its only consumer.
type Store interface {
	Save(relPath string, data []byte) error
	Delete(relPath string) error
	Root() string
}

// FSStore keeps blobs on the local filesystem below a media root passed in
// at construction time.
type FSStore struct {
	root string
}

func NewFSStore(root string) (*FSStore, error) {
	if root == "" {
		return nil, fmt.Errorf("media root must not be empty")
	}
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create media root %s: %w", root, err)
	}
	return &FSStore{root: root}, nil
}

func (s *FSStore) Root() string {
	return s.root
}

func (s *FSStore) Save(relPath string, data []byte) error {
	fullPath := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", relPath, err)
	}
	return nil
}

// Delete removes a stored blob. A missing blob is not an error so that
// overwrite and cascade paths stay idempotent.
func (s *FSStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", relPath, err)
	}
	return nil
}

// ImagePath generates a fresh storage path for an uploaded image, keeping
// only the extension from the detected format.
func ImagePath(ext string) string {
	return filepath.Join("uploads", "images", uuid.NewString()+ext)
}
