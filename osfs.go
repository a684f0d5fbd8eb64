package halfloop

import (
	"os"
	"path/filepath"
	"time"

	"github.com/absfs/absfs"
)

// OSFileSystem is a minimal absfs.FileSystem backed by the native os
// package, rooted at a single directory. It exists so the cmd/ tools can
// pass a real absfs.FileSystem to LoadTuples/WriteTuples instead of only
// exercising the interface against memfs in tests.
type OSFileSystem struct {
	root string
}

// NewOSFileSystem returns an OSFileSystem rooted at root. Paths passed to
// its methods are joined under root, so "." addresses root itself.
func NewOSFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{root: root}
}

func (fs *OSFileSystem) path(name string) string {
	return filepath.Join(fs.root, name)
}

func (fs *OSFileSystem) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	return os.OpenFile(fs.path(name), flag, perm)
}

func (fs *OSFileSystem) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(fs.path(name), perm)
}

func (fs *OSFileSystem) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(fs.path(name), perm)
}

func (fs *OSFileSystem) Remove(name string) error {
	return os.Remove(fs.path(name))
}

func (fs *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(fs.path(path))
}

func (fs *OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(fs.path(oldpath), fs.path(newpath))
}

func (fs *OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(fs.path(name))
}

func (fs *OSFileSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(fs.path(name), mode)
}

func (fs *OSFileSystem) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(fs.path(name), atime, mtime)
}

func (fs *OSFileSystem) Chown(name string, uid, gid int) error {
	return os.Chown(fs.path(name), uid, gid)
}

func (fs *OSFileSystem) Separator() uint8 {
	return os.PathSeparator
}

func (fs *OSFileSystem) ListSeparator() uint8 {
	return os.PathListSeparator
}

func (fs *OSFileSystem) Chdir(dir string) error {
	fs.root = fs.path(dir)
	return nil
}

func (fs *OSFileSystem) Getwd() (string, error) {
	return fs.root, nil
}

func (fs *OSFileSystem) TempDir() string {
	return os.TempDir()
}

func (fs *OSFileSystem) Open(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDONLY, 0)
}

func (fs *OSFileSystem) Create(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

func (fs *OSFileSystem) Truncate(name string, size int64) error {
	return os.Truncate(fs.path(name), size)
}
