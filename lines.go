package vstream

import (
	"errors"
	"io"
	"io/fs"
)

// LineFunc is the callback for EachLine. It receives one line or, for
// directory streams, one fragment of an entry name. The slice is only valid
// until the callback returns. Returning fs.SkipAll stops EachLine without
// error.
type LineFunc func(line []byte) error

// EachLine calls fn for every line read from s with a size-byte buffer,
// stopping at the end of the stream. It works with any Stream.
func EachLine(s Stream, size int, fn LineFunc) error {
	if size < 2 {
		return ErrInvalid
	}
	buf := make([]byte, size)
	for {
		n, err := s.Gets(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(buf[:n]); err != nil {
			if errors.Is(err, fs.SkipAll) {
				return nil
			}
			return err
		}
	}
}

// ReadLines collects every line of s as a string using a size-byte buffer.
func ReadLines(s Stream, size int) ([]string, error) {
	var lines []string
	err := EachLine(s, size, func(line []byte) error {
		lines = append(lines, string(line))
		return nil
	})
	return lines, err
}
