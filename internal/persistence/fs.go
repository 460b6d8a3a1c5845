package persistence

import (
	"errors"
	"io/fs"
	"os"
)

// fileSystem is the slice of the OS the store needs. Tests swap it to inject
// write and rename failures.
type fileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteTemp(dir, pattern string, data []byte) (string, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
	Exists(name string) bool
	MkdirAll(path string) error
}

type osFS struct{}

func (osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteTemp writes data to a uniquely named file in dir and fsyncs it.
func (osFS) WriteTemp(dir, pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	if err := os.Chmod(name, FilePermission); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}

func (osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osFS) Remove(name string) error {
	return os.Remove(name)
}

func (osFS) Exists(name string) bool {
	_, err := os.Stat(name)
	return !errors.Is(err, fs.ErrNotExist)
}

func (osFS) MkdirAll(path string) error {
	return os.MkdirAll(path, DirPermission)
}
