package source

import "os"

// ContentSource provides file content from a specific source.
type ContentSource interface {
	// Read returns the content of the file at path.
	Read(path string) ([]byte, error)
}

// FilesystemSource reads files from the local filesystem.
type FilesystemSource struct{}

// NewFilesystem creates a source that reads from the filesystem.
func NewFilesystem() *FilesystemSource {
	return &FilesystemSource{}
}

// Read implements ContentSource.
func (f *FilesystemSource) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MapSource serves content from an in-memory map. Useful for tests and for
// analyzing content that never touches disk.
type MapSource map[string][]byte

// Read implements ContentSource.
func (m MapSource) Read(path string) ([]byte, error) {
	content, ok := m[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}
