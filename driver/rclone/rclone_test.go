package rclone_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/rclone/rclone/backend/local"

	"github.com/nuln/vstream"
	"github.com/nuln/vstream/driver/rclone"
	"github.com/nuln/vstream/vstreamtest"
)

func TestRcloneStream_Local(t *testing.T) {
	vstreamtest.DirSuite(t, vstream.KindRemoteDir, func(t *testing.T, names []string) vstream.Stream {
		root := t.TempDir()
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(root, name), []byte(name), 0o644); err != nil {
				t.Fatalf("WriteFile %s: %v", name, err)
			}
		}
		s, err := rclone.Open(context.Background(), "rclone:"+root+"/")
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		return s
	})
}

func TestRemote(t *testing.T) {
	tests := map[string]string{
		"rclone:":              ".",
		"RCLONE:gdrive:music/": "gdrive:music",
		"rclone:/tmp/x//":      "/tmp/x",
		"rclone:///":           "/",
		"gdrive:":              "gdrive:",
	}
	for in, want := range tests {
		if got := rclone.Remote(in); got != want {
			t.Errorf("Remote(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRcloneStream_Errors(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	if _, err := rclone.Open(ctx, "rclone:"+filepath.Join(root, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: err = %v, want ErrNotExist", err)
	}

	file := filepath.Join(root, "song.mid")
	if err := os.WriteFile(file, []byte("MThd"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := rclone.Open(ctx, "rclone:"+file); !errors.Is(err, vstream.ErrNotDir) {
		t.Errorf("file: err = %v, want ErrNotDir", err)
	}
}

func TestRcloneStream_Dispatch(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.mid"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// The scheme prefix wins over the trailing separator.
	s, err := vstream.Open("rclone:" + root + "/")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = s.Close() }()
	if s.Kind() != vstream.KindRemoteDir {
		t.Errorf("Kind = %q, want rclone", s.Kind())
	}
	if _, ok := vstream.DirName(s); ok {
		t.Error("DirName should only answer for local directory streams")
	}
	lines, err := vstream.ReadLines(s, 16)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "a.mid" {
		t.Errorf("lines = %q, want [a.mid]", lines)
	}
}
