// Package mem implements a seekable stream over an in-memory buffer.
package mem

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/nuln/vstream"
	"github.com/nuln/vstream/internal/lineio"
)

// Scheme is the case-insensitive source prefix of memory sources. The rest
// of the identifier is the stream content.
const Scheme = "mem:"

// Priority is the recognition priority of the memory module.
const Priority = 20

// Auto-register memory driver.
func init() {
	vstream.Register(vstream.Module{
		Kind:     vstream.KindMem,
		Priority: Priority,
		Check:    Recognize,
		Open: func(ctx context.Context, cfg *vstream.Config) (vstream.Stream, error) {
			_ = ctx
			if v, ok := cfg.Options["data"]; ok {
				switch data := v.(type) {
				case []byte:
					return New(data), nil
				case string:
					return New([]byte(data)), nil
				default:
					return nil, errors.New("vstream/mem: option \"data\" must be []byte or string")
				}
			}
			return New([]byte(content(cfg.Source))), nil
		},
	})
}

// Recognize reports whether source carries the mem: scheme.
func Recognize(source string) bool {
	return len(source) >= len(Scheme) && strings.EqualFold(source[:len(Scheme)], Scheme)
}

func content(source string) string {
	if Recognize(source) {
		return source[len(Scheme):]
	}
	return source
}

// Stream reads from a byte slice. It supports seeking to any offset within
// the buffer.
type Stream struct {
	data   []byte
	offset int64
	closed bool
}

// New returns a stream over data. The slice is not copied.
func New(data []byte) *Stream {
	return &Stream{data: data}
}

func (s *Stream) Kind() vstream.Kind { return vstream.KindMem }

func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

func (s *Stream) ReadByte() (byte, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	c := s.data[s.offset]
	s.offset++
	return c, nil
}

func (s *Stream) Gets(p []byte) (int, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	return lineio.Gets(s, p)
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, vstream.ErrClosed
	}
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, errors.New("vstream/mem: invalid whence")
	}

	if newOffset < 0 || newOffset > int64(len(s.data)) {
		return 0, errors.New("vstream/mem: seek offset out of range")
	}

	s.offset = newOffset
	return s.offset, nil
}

func (s *Stream) Tell() int64 { return s.offset }

func (s *Stream) Close() error {
	if s.closed {
		return vstream.ErrClosed
	}
	s.closed = true
	s.data = nil
	return nil
}

// Compile-time interface checks.
var (
	_ vstream.Stream     = (*Stream)(nil)
	_ vstream.Seeker     = (*Stream)(nil)
	_ vstream.ByteReader = (*Stream)(nil)
)
