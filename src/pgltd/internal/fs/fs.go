package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// errStopWalk ends a directory walk early once a match is found.
var errStopWalk = errors.New("stop walk")

// PgltFS wraps the filesystem operations used by pgltd.
type PgltFS interface {
	UserCacheDir() (string, error)
	UserHomeDir() (string, error)
	MkdirAll(path string) error
	FileExists(path string) (bool, error)
	EvalSymlinks(path string) (string, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	Chmod(name string, mode os.FileMode) error
	Rename(oldpath, newpath string) error
	TempFile(dir, pattern string) (*os.File, error)
	Remove(name string) error
	RemoveAll(path string) error
	ContainsFile(root string, name string, skipDirs ...string) (bool, error)
}

type fsImpl struct{}

// New creates a new PgltFS.
func New() PgltFS {
	return fsImpl{}
}

// UserCacheDir returns the user's cache directory.
func (fsImpl) UserCacheDir() (string, error) { return os.UserCacheDir() }

// UserHomeDir returns the user's home directory.
func (fsImpl) UserHomeDir() (string, error) { return os.UserHomeDir() }

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

// FileExists reports whether path names a regular file, following symlinks.
func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (fsImpl) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (fsImpl) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

func (fsImpl) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (fsImpl) TempFile(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}

func (fsImpl) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// ContainsFile reports whether a file with the given base name exists anywhere below root.
// Directories whose base name is listed in skipDirs are not descended into.
func (fsImpl) ContainsFile(root string, name string, skipDirs ...string) (bool, error) {
	skip := make(map[string]struct{}, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = struct{}{}
	}

	found := false
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtrees are ignored.
			return iofs.SkipDir
		}
		if d.IsDir() {
			if _, ok := skip[d.Name()]; ok && path != root {
				return iofs.SkipDir
			}
			return nil
		}
		if d.Name() == name {
			found = true
			return errStopWalk
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return false, err
	}
	return found, nil
}
