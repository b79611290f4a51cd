package vstream

import (
	"io"
)

// Seeker is implemented by streams that support random access.
// Use type assertion to check: if sk, ok := s.(vstream.Seeker); ok { ... }
type Seeker interface {
	Seek(offset int64, whence int) (int64, error)
}

// ByteReader is implemented by streams with a native single-byte read.
type ByteReader = io.ByteReader

// Seek seeks s if its backend supports it and returns [ErrNotSupported]
// otherwise.
func Seek(s Stream, offset int64, whence int) (int64, error) {
	sk, ok := s.(Seeker)
	if !ok {
		return 0, ErrNotSupported
	}
	return sk.Seek(offset, whence)
}

// ReadByte reads a single byte from s. Backends without a native byte read
// are served by a one-byte Read; a backend that cannot fit any content in
// one byte (directory listings reserve room for a terminator) yields
// io.ErrNoProgress.
func ReadByte(s Stream) (byte, error) {
	if br, ok := s.(ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	n, err := s.Read(b[:])
	if n == 1 {
		return b[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}
