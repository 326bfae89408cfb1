// Package filesystem abstracts the handful of file operations pal performs
// on its data directory, so they can be mocked in tests.
package filesystem

import "os"

type FileSystem interface {
	Open(name string) (*os.File, error)
	Create(name string) (*os.File, error)
	ReadFile(name string) (string, error)
	WriteFile(name, content string) error
}

// DefaultFileSystem passes through to the os package.
type DefaultFileSystem struct{}

func (DefaultFileSystem) Open(name string) (*os.File, error) {
	return os.Open(name)
}

func (DefaultFileSystem) Create(name string) (*os.File, error) {
	return os.Create(name)
}

func (DefaultFileSystem) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (DefaultFileSystem) WriteFile(name, content string) error {
	return os.WriteFile(name, []byte(content), 0644)
}
