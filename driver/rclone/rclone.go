// Package rclone implements a directory listing backend for any rclone
// remote. Sources look like "rclone:gdrive:music/" or "rclone:/local/dir".
package rclone

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/rclone/rclone/fs"
	"go.uber.org/zap"

	"github.com/nuln/vstream"
	"github.com/nuln/vstream/internal/entries"
)

// Scheme is the case-insensitive source prefix of remote directories.
const Scheme = "rclone:"

// Priority is the recognition priority of the rclone module.
const Priority = 10

// Auto-register rclone driver.
func init() {
	vstream.Register(vstream.Module{
		Kind:     vstream.KindRemoteDir,
		Priority: Priority,
		Check:    Recognize,
		Open: func(ctx context.Context, cfg *vstream.Config) (vstream.Stream, error) {
			source := cfg.Source
			if v, ok := cfg.Options["remote"]; ok {
				if s, ok := v.(string); ok && s != "" {
					source = s
				}
			}
			return Open(ctx, source)
		},
	})
}

// Recognize reports whether source carries the rclone: scheme.
func Recognize(source string) bool {
	return len(source) >= len(Scheme) && strings.EqualFold(source[:len(Scheme)], Scheme)
}

// Remote strips the scheme and trailing slashes from source. An empty
// remote means the current directory; a remote of only slashes is "/".
func Remote(source string) string {
	r := source
	if Recognize(r) {
		r = r[len(Scheme):]
	}
	if r == "" {
		return "."
	}
	trimmed := strings.TrimRight(r, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// Stream lists the direct children of a remote directory.
type Stream struct {
	remote fs.Fs
	path   string
	cursor *entries.Cursor
	closed bool
}

// Open lists the remote directory named by source.
func Open(ctx context.Context, source string) (*Stream, error) {
	remotePath := Remote(source)

	f, err := fs.NewFs(ctx, remotePath)
	if err != nil {
		if errors.Is(err, fs.ErrorIsFile) {
			return nil, &iofs.PathError{Op: "opendir", Path: remotePath, Err: vstream.ErrNotDir}
		}
		return nil, convertError(remotePath, err)
	}

	list, err := f.List(ctx, "")
	if err != nil {
		shutdown(ctx, f)
		return nil, convertError(remotePath, err)
	}

	names := make([]string, 0, len(list))
	for _, entry := range list {
		names = append(names, path.Base(entry.Remote()))
	}

	s := &Stream{remote: f, path: remotePath}
	s.cursor = entries.NewCursor(entries.EnumeratorFunc(func() (string, error) {
		if len(names) == 0 {
			return "", io.EOF
		}
		name := names[0]
		names = names[1:]
		return name, nil
	}))

	vstream.Logger().Debug("remote directory listed",
		zap.String("remote", remotePath),
		zap.Int("entries", len(list)))
	return s, nil
}

func (s *Stream) Kind() vstream.Kind { return vstream.KindRemoteDir }

// Path returns the normalized remote path.
func (s *Stream) Path() string { return s.path }

func (s *Stream) Gets(p []byte) (int, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	return s.cursor.Gets(p)
}

// Read delegates to Gets.
func (s *Stream) Read(p []byte) (int, error) {
	return s.Gets(p)
}

func (s *Stream) Tell() int64 { return s.cursor.Tell() }

func (s *Stream) Close() error {
	if s.closed {
		return vstream.ErrClosed
	}
	s.closed = true
	shutdown(context.Background(), s.remote)
	return nil
}

// shutdown releases backends that hold connections or caches.
func shutdown(ctx context.Context, f fs.Fs) {
	if sd, ok := f.(interface{ Shutdown(context.Context) error }); ok {
		if err := sd.Shutdown(ctx); err != nil {
			vstream.Logger().Warn("remote shutdown failed", zap.String("remote", fs.ConfigString(f)), zap.Error(err))
		}
	}
}

// Helpers

func convertError(remotePath string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrorDirNotFound) || errors.Is(err, fs.ErrorObjectNotFound) {
		return &iofs.PathError{Op: "opendir", Path: remotePath, Err: iofs.ErrNotExist}
	}
	return err
}

// Compile-time interface checks.
var _ vstream.Stream = (*Stream)(nil)
