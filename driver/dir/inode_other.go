//go:build !unix

package dir

import "io/fs"

// No node identifier is exposed here; only empty names are filtered.
func zeroInode(fs.FileInfo) bool { return false }
