// Package file implements a stream over a regular file. It is the
// catch-all module: any source no other module claims is opened as a file.
package file

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/nuln/vstream"
	"github.com/nuln/vstream/internal/lineio"
)

// Scheme is the optional case-insensitive source prefix of file sources.
const Scheme = "file:"

// Priority is the recognition priority of the file module.
const Priority = 100

// Auto-register file driver.
func init() {
	vstream.Register(vstream.Module{
		Kind:     vstream.KindFile,
		Priority: Priority,
		Check:    Recognize,
		Open: func(ctx context.Context, cfg *vstream.Config) (vstream.Stream, error) {
			_ = ctx
			return Open(cfg.Filesystem(), cfg.Source)
		},
	})
}

// Recognize accepts file: sources and anything without a URL scheme.
func Recognize(source string) bool {
	if hasScheme(source) {
		return true
	}
	return !strings.Contains(source, "://")
}

func hasScheme(source string) bool {
	return len(source) >= len(Scheme) && strings.EqualFold(source[:len(Scheme)], Scheme)
}

// Resolve turns a source identifier into a filesystem path: the file:
// scheme and an empty authority ("file:///x") are dropped and a leading ~
// is expanded.
func Resolve(source string) string {
	name := source
	if hasScheme(name) {
		name = name[len(Scheme):]
		name = strings.TrimPrefix(name, "//")
	}
	if expanded, err := homedir.Expand(name); err == nil {
		name = expanded
	}
	return name
}

// Stream reads a regular file through a buffer.
type Stream struct {
	f      afero.File
	r      *bufio.Reader
	path   string
	offset int64
	closed bool
}

// Open opens the file named by source on fsys. A nil fsys means the OS
// filesystem. Opening a directory yields a *fs.PathError wrapping
// vstream.ErrIsDir.
func Open(fsys afero.Fs, source string) (*Stream, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	path := Resolve(source)

	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: vstream.ErrIsDir}
	}

	vstream.Logger().Debug("file opened", zap.String("path", path), zap.Int64("size", info.Size()))
	return &Stream{f: f, r: bufio.NewReader(f), path: path}, nil
}

func (s *Stream) Kind() vstream.Kind { return vstream.KindFile }

// Path returns the resolved file path.
func (s *Stream) Path() string { return s.path }

func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	n, err := s.r.Read(p)
	s.offset += int64(n)
	return n, err
}

func (s *Stream) ReadByte() (byte, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	c, err := s.r.ReadByte()
	if err == nil {
		s.offset++
	}
	return c, err
}

func (s *Stream) Gets(p []byte) (int, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	return lineio.Gets(s, p)
}

// Seek repositions the underlying file and drops buffered data.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	if whence == io.SeekCurrent {
		// The file position is ahead of the logical one by the buffered bytes.
		offset, whence = s.offset+offset, io.SeekStart
	}
	pos, err := s.f.Seek(offset, whence)
	if err != nil {
		return s.offset, err
	}
	s.r.Reset(s.f)
	s.offset = pos
	return pos, nil
}

func (s *Stream) Tell() int64 { return s.offset }

func (s *Stream) Close() error {
	if s.closed {
		return vstream.ErrClosed
	}
	s.closed = true
	vstream.Logger().Debug("file closed", zap.String("path", s.path))
	return s.f.Close()
}

// Compile-time interface checks.
var (
	_ vstream.Stream     = (*Stream)(nil)
	_ vstream.Seeker     = (*Stream)(nil)
	_ vstream.ByteReader = (*Stream)(nil)
)
