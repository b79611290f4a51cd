// Package vstreamtest provides a conformance suite for directory-like
// stream backends.
package vstreamtest

import (
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/nuln/vstream"
)

// DirFactory opens a fresh stream over a directory holding exactly names.
// It must register any cleanup of the fixture with t.Cleanup.
type DirFactory func(t *testing.T, names []string) vstream.Stream

// DirSuite runs a comprehensive set of tests against a directory-like
// backend. Call this in your driver tests to verify correctness:
//
//	func TestDirStream(t *testing.T) {
//	    vstreamtest.DirSuite(t, vstream.KindDir, newFixture)
//	}
func DirSuite(t *testing.T, kind vstream.Kind, open DirFactory) { //nolint:gocyclo
	t.Helper()

	t.Run("Entries_Exhaustion", func(t *testing.T) {
		s := open(t, []string{"a", "bb", "ccc"})
		defer func() { _ = s.Close() }()

		if s.Kind() != kind {
			t.Errorf("Kind = %q, want %q", s.Kind(), kind)
		}

		buf := make([]byte, 10)
		var got []string
		for i := 0; i < 3; i++ {
			n, err := s.Gets(buf)
			if err != nil {
				t.Fatalf("Gets #%d: %v", i+1, err)
			}
			if buf[n] != 0 {
				t.Errorf("Gets #%d: missing terminator", i+1)
			}
			got = append(got, string(buf[:n]))
		}
		sort.Strings(got)
		if strings.Join(got, ",") != "a,bb,ccc" {
			t.Errorf("entries = %q, want [a bb ccc]", got)
		}

		for i := 0; i < 3; i++ {
			if n, err := s.Gets(buf); err != io.EOF || n != 0 {
				t.Fatalf("Gets after last entry = %d, %v; want 0, EOF", n, err)
			}
		}
		if s.Tell() != 6 {
			t.Errorf("Tell = %d, want 6", s.Tell())
		}
	})

	t.Run("Empty", func(t *testing.T) {
		s := open(t, nil)
		defer func() { _ = s.Close() }()

		buf := make([]byte, 16)
		if n, err := s.Gets(buf); err != io.EOF || n != 0 {
			t.Fatalf("Gets = %d, %v; want 0, EOF", n, err)
		}
		if s.Tell() != 0 {
			t.Errorf("Tell = %d, want 0", s.Tell())
		}
	})

	t.Run("Fragments", func(t *testing.T) {
		s := open(t, []string{"longfilename"})
		defer func() { _ = s.Close() }()

		buf := make([]byte, 5)
		for _, want := range []string{"long", "file", "name"} {
			n, err := s.Gets(buf)
			if err != nil {
				t.Fatalf("Gets: %v", err)
			}
			if string(buf[:n]) != want {
				t.Errorf("fragment = %q, want %q", buf[:n], want)
			}
		}
		if _, err := s.Gets(buf); err != io.EOF {
			t.Errorf("Gets after name = %v, want EOF", err)
		}
		if s.Tell() != 12 {
			t.Errorf("Tell = %d, want 12", s.Tell())
		}
	})

	t.Run("FragmentCount", func(t *testing.T) {
		const name = "0123456789abcdefghij" // 20 bytes
		for _, size := range []int{2, 3, 5, 8, 20, 21, 64} {
			s := open(t, []string{name})
			buf := make([]byte, size)
			var frags []string
			for {
				n, err := s.Gets(buf)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("size %d: Gets: %v", size, err)
				}
				frags = append(frags, string(buf[:n]))
			}
			usable := size - 1
			if want := (len(name) + usable - 1) / usable; len(frags) != want {
				t.Errorf("size %d: %d fragments, want %d", size, len(frags), want)
			}
			if strings.Join(frags, "") != name {
				t.Errorf("size %d: joined = %q", size, strings.Join(frags, ""))
			}
			if s.Tell() != int64(len(name)) {
				t.Errorf("size %d: Tell = %d, want %d", size, s.Tell(), len(name))
			}
			_ = s.Close()
		}
	})

	t.Run("DegenerateBuffers", func(t *testing.T) {
		s := open(t, []string{"x"})
		defer func() { _ = s.Close() }()

		if n, err := s.Gets(nil); n != 0 || err != nil {
			t.Errorf("Gets(nil) = %d, %v; want 0, nil", n, err)
		}
		one := []byte{'?'}
		if n, err := s.Gets(one); n != 0 || err != nil || one[0] != 0 {
			t.Errorf("Gets(1) = %d, %v, %q; want 0, nil, NUL", n, err, one[0])
		}
		buf := make([]byte, 4)
		n, err := s.Gets(buf)
		if err != nil || string(buf[:n]) != "x" {
			t.Errorf("Gets after degenerate calls = %q, %v; want \"x\"", buf[:n], err)
		}
	})

	t.Run("Read", func(t *testing.T) {
		s := open(t, []string{"longfilename"})
		defer func() { _ = s.Close() }()

		buf := make([]byte, 5)
		n, err := s.Read(buf)
		if err != nil || n != 4 || string(buf[:n]) != "long" {
			t.Fatalf("Read = %d, %v, %q; want 4, nil, \"long\"", n, err, buf[:n])
		}
		data, err := io.ReadAll(s)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if string(data) != "filename" {
			t.Errorf("ReadAll = %q, want %q", data, "filename")
		}
	})

	t.Run("NoSeek", func(t *testing.T) {
		s := open(t, []string{"x"})
		defer func() { _ = s.Close() }()

		if _, err := vstream.Seek(s, 0, io.SeekStart); !errors.Is(err, vstream.ErrNotSupported) {
			t.Errorf("Seek = %v, want ErrNotSupported", err)
		}
	})

	t.Run("Close", func(t *testing.T) {
		s := open(t, []string{"x"})
		if err := s.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		if err := s.Close(); !errors.Is(err, vstream.ErrClosed) {
			t.Errorf("second Close = %v, want ErrClosed", err)
		}
		if _, err := s.Gets(make([]byte, 4)); !errors.Is(err, vstream.ErrClosed) {
			t.Errorf("Gets after Close = %v, want ErrClosed", err)
		}
	})
}
