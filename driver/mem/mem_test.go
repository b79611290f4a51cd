package mem_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/nuln/vstream"
	"github.com/nuln/vstream/driver/mem"
)

func TestMemStream_ReadSeekTell(t *testing.T) {
	s := mem.New([]byte("hello world"))
	defer func() { _ = s.Close() }()

	buf := make([]byte, 5)
	n, err := s.Read(buf)
	if err != nil || string(buf[:n]) != "hello" {
		t.Fatalf("Read = %q, %v", buf[:n], err)
	}
	if s.Tell() != 5 {
		t.Errorf("Tell = %d, want 5", s.Tell())
	}

	if _, err := vstream.Seek(s, 6, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	rest, _ := io.ReadAll(s)
	if string(rest) != "world" {
		t.Errorf("after seek = %q, want %q", rest, "world")
	}

	if _, err := s.Seek(-5, io.SeekEnd); err != nil {
		t.Fatalf("Seek end: %v", err)
	}
	c, err := vstream.ReadByte(s)
	if err != nil || c != 'w' {
		t.Errorf("ReadByte = %q, %v; want 'w'", c, err)
	}

	if _, err := s.Seek(100, io.SeekStart); err == nil {
		t.Error("Seek past end: expected error")
	}
	if _, err := s.Seek(0, 42); err == nil {
		t.Error("Seek bad whence: expected error")
	}
}

func TestMemStream_Gets(t *testing.T) {
	s := mem.New([]byte("line one\nline two\n"))
	lines, err := vstream.ReadLines(s, 64)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 || lines[0] != "line one\n" || lines[1] != "line two\n" {
		t.Errorf("lines = %q", lines)
	}
	if s.Tell() != 18 {
		t.Errorf("Tell = %d, want 18", s.Tell())
	}
}

func TestMemStream_Close(t *testing.T) {
	s := mem.New([]byte("x"))
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); !errors.Is(err, vstream.ErrClosed) {
		t.Errorf("second Close = %v, want ErrClosed", err)
	}
	if _, err := s.Read(make([]byte, 1)); !errors.Is(err, vstream.ErrClosed) {
		t.Errorf("Read after Close = %v, want ErrClosed", err)
	}
}

func TestMemStream_Dispatch(t *testing.T) {
	s, err := vstream.Open("MEM:abc")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = s.Close() }()
	if s.Kind() != vstream.KindMem {
		t.Errorf("Kind = %q, want mem", s.Kind())
	}
	data, _ := io.ReadAll(s)
	if string(data) != "abc" {
		t.Errorf("content = %q, want abc", data)
	}
	if _, ok := vstream.DirName(s); ok {
		t.Error("DirName reported a memory stream as a directory")
	}

	s2, err := vstream.OpenConfig(context.Background(), &vstream.Config{
		Kind:    vstream.KindMem,
		Options: map[string]any{"data": []byte{0x4d, 0x54}},
	})
	if err != nil {
		t.Fatalf("OpenConfig: %v", err)
	}
	defer func() { _ = s2.Close() }()
	data, _ = io.ReadAll(s2)
	if string(data) != "MT" {
		t.Errorf("content = %q, want MT", data)
	}

	_, err = vstream.OpenConfig(context.Background(), &vstream.Config{
		Kind:    vstream.KindMem,
		Options: map[string]any{"data": 42},
	})
	if err == nil {
		t.Error("OpenConfig with bad data option: expected error")
	}
}
