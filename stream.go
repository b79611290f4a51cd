package vstream

// Stream defines the uniform interface for all source backends.
// All driver implementations must satisfy this interface.
//
// A Stream is not safe for concurrent use. It must be closed exactly once;
// every operation after Close returns [ErrClosed].
type Stream interface {
	// Kind identifies the backend that produced the stream.
	Kind() Kind

	// Read reads up to len(p) bytes into p. At the end of the source it
	// returns 0, io.EOF.
	Read(p []byte) (n int, err error)

	// Gets reads one line into p, fgets style: at most len(p)-1 content
	// bytes followed by a NUL byte. n counts content bytes only. It returns
	// 0, io.EOF once the source is exhausted.
	Gets(p []byte) (n int, err error)

	// Tell reports the number of bytes delivered so far (or the current
	// offset for seekable backends).
	Tell() int64

	// Close releases every resource held by the stream.
	Close() error
}
