package vstream

// Kind is the type tag of a [Stream]. Each backend registers exactly one Kind.
type Kind string

const (
	// KindDir is a local directory listing.
	KindDir Kind = "dir"

	// KindRemoteDir is a directory listing of an rclone remote.
	KindRemoteDir Kind = "rclone"

	// KindFile is a regular file.
	KindFile Kind = "file"

	// KindMem is an in-memory buffer.
	KindMem Kind = "mem"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}
