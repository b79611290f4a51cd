// Package dir implements a directory listing backend: every direct child
// of a directory is delivered as one line holding its base name.
package dir

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/nuln/vstream"
	"github.com/nuln/vstream/internal/entries"
)

// Scheme is the case-insensitive source prefix naming a directory.
const Scheme = "dir:"

// Priority is the recognition priority of the directory module. It runs
// after scheme-prefixed modules since a trailing separator is a weaker hint.
const Priority = 50

// RootPath is the canonical root directory.
var RootPath = string(filepath.Separator)

// Auto-register directory driver.
func init() {
	vstream.Register(vstream.Module{
		Kind:     vstream.KindDir,
		Priority: Priority,
		Check:    Recognize,
		Open: func(ctx context.Context, cfg *vstream.Config) (vstream.Stream, error) {
			_ = ctx
			return Open(cfg.Filesystem(), cfg.Source)
		},
	})
}

// Recognize reports whether source names a directory: it carries the dir:
// scheme or its last path component is empty.
func Recognize(source string) bool {
	if hasScheme(source) {
		return true
	}
	return source != "" && os.IsPathSeparator(source[len(source)-1])
}

func hasScheme(source string) bool {
	return len(source) >= len(Scheme) && strings.EqualFold(source[:len(Scheme)], Scheme)
}

// Resolve turns a source identifier into the directory path that Open
// would enumerate. An empty identifier means the current directory.
func Resolve(source string) string {
	name := source
	if hasScheme(name) {
		name = name[len(Scheme):]
	}
	if name == "" {
		name = "."
	} else {
		name = expandHome(name)
	}
	return Normalize(name)
}

// Normalize strips every trailing path separator. A path made only of
// separators collapses to RootPath.
func Normalize(p string) string {
	n := len(p)
	for n > 0 && os.IsPathSeparator(p[n-1]) {
		n--
	}
	if n == 0 {
		return RootPath
	}
	return p[:n]
}

// expandHome keeps the path as given when it cannot be expanded
// (e.g. ~otheruser).
func expandHome(p string) string {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return expanded
}

// Stream lists the entries of one directory.
type Stream struct {
	dir    afero.File
	path   string
	cursor *entries.Cursor
	closed bool
}

// Open opens the directory named by source on fsys. A nil fsys means the OS
// filesystem. Errors from the filesystem are returned unchanged; a source
// that exists but is not a directory yields a *fs.PathError wrapping
// vstream.ErrNotDir.
func Open(fsys afero.Fs, source string) (*Stream, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	path := Resolve(source)

	d, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := d.Stat()
	if err != nil {
		_ = d.Close()
		return nil, err
	}
	if !info.IsDir() {
		_ = d.Close()
		return nil, &fs.PathError{Op: "opendir", Path: path, Err: vstream.ErrNotDir}
	}

	s := &Stream{dir: d, path: path}
	s.cursor = entries.NewCursor(entries.EnumeratorFunc(s.next))

	vstream.Logger().Debug("directory opened", zap.String("path", path))
	return s, nil
}

// next fetches one entry. Entries with a zero inode come back with an
// empty name so the cursor skips them.
func (s *Stream) next() (string, error) {
	infos, err := s.dir.Readdir(1)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", io.EOF
	}
	if zeroInode(infos[0]) {
		return "", nil
	}
	return infos[0].Name(), nil
}

func (s *Stream) Kind() vstream.Kind { return vstream.KindDir }

// Path returns the normalized directory path.
func (s *Stream) Path() string { return s.path }

func (s *Stream) Gets(p []byte) (int, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	return s.cursor.Gets(p)
}

// Read delegates to Gets, so a short buffer still yields one name fragment
// per call.
func (s *Stream) Read(p []byte) (int, error) {
	return s.Gets(p)
}

// Tell returns the number of name bytes delivered so far.
func (s *Stream) Tell() int64 { return s.cursor.Tell() }

func (s *Stream) Close() error {
	if s.closed {
		return vstream.ErrClosed
	}
	s.closed = true
	err := s.dir.Close()
	vstream.Logger().Debug("directory closed",
		zap.String("path", s.path),
		zap.Int64("delivered", s.cursor.Tell()))
	return err
}

// Compile-time interface checks.
var _ vstream.Stream = (*Stream)(nil)
