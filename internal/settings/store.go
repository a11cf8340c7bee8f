package settings

import (
	"os"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileStore is the os-backed [Store].
//
// WriteFile truncates and rewrites in place: an existing file keeps its
// permission bits, and a crash mid-write can leave partial content.
type FileStore struct{}

// NewFileStore returns a [Store] working on the local filesystem.
func NewFileStore() *FileStore {
	return &FileStore{}
}

func (s *FileStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *FileStore) MkdirAll(dir string) error {
	return os.MkdirAll(dir, dirPerm)
}

func (s *FileStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePerm)
}
