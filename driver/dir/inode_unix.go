//go:build unix

package dir

import (
	"io/fs"
	"syscall"
)

func zeroInode(info fs.FileInfo) bool {
	st, ok := info.Sys().(*syscall.Stat_t)
	return ok && st.Ino == 0
}
