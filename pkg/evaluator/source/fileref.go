package source

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileRef is a Reference to a path on an afero filesystem.
// It never touches the filesystem itself; Fs is exposed for callers that
// need to open or stat the file.
type FileRef struct {
	fs   afero.Fs
	path string
}

// NewFileRef returns a reference to path on fsys. A nil fsys means the OS
// filesystem. Repeated separators collapse and a trailing separator is
// dropped; dot segments are kept as given.
func NewFileRef(fsys afero.Fs, path string) *FileRef {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileRef{fs: fsys, path: normalizePath(path)}
}

// FromPath is shorthand for New(NewFileRef(fsys, path)).
func FromPath(fsys afero.Fs, path string) *Source {
	return New(NewFileRef(fsys, path))
}

// BaseName returns the segment after the last separator, or "" for the
// empty path and the root.
func (r *FileRef) BaseName() string {
	i := strings.LastIndexByte(r.path, filepath.Separator)
	return r.path[i+1:]
}

// FullPath returns the normalized path.
func (r *FileRef) FullPath() string {
	return r.path
}

// Fs returns the filesystem the path refers to.
func (r *FileRef) Fs() afero.Fs {
	return r.fs
}

func normalizePath(p string) string {
	p = filepath.FromSlash(p)
	sep := string(filepath.Separator)
	for strings.Contains(p, sep+sep) {
		p = strings.ReplaceAll(p, sep+sep, sep)
	}
	if len(p) > 1 && strings.HasSuffix(p, sep) {
		p = strings.TrimSuffix(p, sep)
	}
	return p
}
