// Package vstream provides a uniform readable stream over heterogeneous
// sources: directories, regular files, in-memory buffers and rclone remotes.
//
// It defines a small [Stream] interface that every backend satisfies and a
// registry of backend modules. [Open] walks the registry in priority order
// and hands the source identifier to the first module that recognizes it.
//
// # Supported Drivers
//
//   - rclone — Directory listing of any rclone remote (import _ "github.com/nuln/vstream/driver/rclone")
//   - mem    — In-memory buffer (import _ "github.com/nuln/vstream/driver/mem")
//   - dir    — Directory listing, one entry name per line (import _ "github.com/nuln/vstream/driver/dir")
//   - file   — Regular file via afero, the catch-all (import _ "github.com/nuln/vstream/driver/file")
//
// # Quick Start
//
//	import (
//	    "github.com/nuln/vstream"
//	    _ "github.com/nuln/vstream/driver/dir"
//	)
//
//	s, err := vstream.Open("dir:~/music")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	buf := make([]byte, 256)
//	for {
//	    n, err := s.Gets(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// # Import All Drivers
//
//	import _ "github.com/nuln/vstream/drivers"
package vstream
