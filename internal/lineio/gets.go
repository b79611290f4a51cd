// Package lineio holds the fgets-style line read shared by byte-stream
// backends.
package lineio

import "io"

// Gets reads bytes from r into p until it has copied a newline or
// len(p)-1 bytes, then writes a terminating NUL. It returns the number of
// bytes copied, excluding the NUL, and io.EOF only when nothing was left
// to read.
func Gets(r io.ByteReader, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	usable := len(p) - 1
	n := 0
	for n < usable {
		c, err := r.ReadByte()
		if err != nil {
			p[n] = 0
			if err == io.EOF && n > 0 {
				return n, nil
			}
			return n, err
		}
		p[n] = c
		n++
		if c == '\n' {
			break
		}
	}
	p[n] = 0
	return n, nil
}
