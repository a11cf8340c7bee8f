package settings

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_store_mock.go -package=mock

// Store is the filesystem boundary of [Patcher].
type Store interface {
	// ReadFile returns the content of the file at path. A missing file is
	// reported with an error matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)

	// MkdirAll creates dir and any missing parents. It succeeds if dir
	// already exists.
	MkdirAll(dir string) error

	// WriteFile replaces the content of the file at path with data, creating
	// the file if needed.
	WriteFile(path string, data []byte) error
}
