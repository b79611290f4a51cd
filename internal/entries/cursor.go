// Package entries turns an enumeration of names into the line-oriented
// byte stream served by directory-like backends.
package entries

import (
	"errors"
	"io"
)

// Enumerator yields one entry name per call and io.EOF once exhausted.
// The returned name may be empty; the Cursor skips such entries.
type Enumerator interface {
	Next() (string, error)
}

// EnumeratorFunc adapts a function to the Enumerator interface.
type EnumeratorFunc func() (string, error)

// Next calls f.
func (f EnumeratorFunc) Next() (string, error) { return f() }

// Cursor delivers entry names fragment by fragment. A name longer than the
// caller's buffer is split across consecutive Gets calls; nothing is ever
// inserted between fragments or between entries.
type Cursor struct {
	enum    Enumerator
	pending string // unconsumed suffix of the current name
	total   int64
	end     bool
}

// NewCursor returns a Cursor reading from enum.
func NewCursor(enum Enumerator) *Cursor {
	return &Cursor{enum: enum}
}

// Gets writes the next fragment into p followed by a NUL byte and returns
// the fragment length. It returns 0, io.EOF once the enumerator is
// exhausted, and keeps doing so without consulting it again.
func (c *Cursor) Gets(p []byte) (int, error) {
	if c.end {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) == 1 {
		p[0] = 0
		return 0, nil
	}
	usable := len(p) - 1
	for {
		if len(c.pending) > 0 {
			n := copy(p[:usable], c.pending)
			p[n] = 0
			c.pending = c.pending[n:]
			c.total += int64(n)
			return n, nil
		}

		name, err := c.next()
		if err != nil {
			c.end = true
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, err
		}
		c.pending = name
	}
}

// next skips empty names until a usable one or an error turns up.
func (c *Cursor) next() (string, error) {
	for {
		name, err := c.enum.Next()
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
	}
}

// Read serves Gets through the io.Reader signature.
func (c *Cursor) Read(p []byte) (int, error) {
	return c.Gets(p)
}

// Tell returns the number of name bytes delivered so far.
func (c *Cursor) Tell() int64 {
	return c.total
}

// Pending returns the number of bytes of the current name not yet delivered.
func (c *Cursor) Pending() int {
	return len(c.pending)
}

// Done reports whether the enumeration is exhausted.
func (c *Cursor) Done() bool {
	return c.end
}
