package vstream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nuln/vstream"
)

type nopStream struct{ kind vstream.Kind }

func (s *nopStream) Kind() vstream.Kind       { return s.kind }
func (s *nopStream) Read([]byte) (int, error) { return 0, nil }
func (s *nopStream) Gets([]byte) (int, error) { return 0, nil }
func (s *nopStream) Tell() int64              { return 0 }
func (s *nopStream) Close() error             { return nil }

func TestRegistry(t *testing.T) {
	var opened []string
	open := func(kind vstream.Kind) vstream.Factory {
		return func(ctx context.Context, cfg *vstream.Config) (vstream.Stream, error) {
			opened = append(opened, string(kind)+":"+cfg.Source)
			return &nopStream{kind: kind}, nil
		}
	}
	accept := func(s string) bool { return s != "" }

	vstream.Register(vstream.Module{Kind: "test-late", Priority: 900, Check: accept, Open: open("test-late")})
	vstream.Register(vstream.Module{Kind: "test-early", Priority: 800, Check: func(s string) bool { return s == "early" }, Open: open("test-early")})
	vstream.Register(vstream.Module{Kind: "test-hidden", Priority: 1, Open: open("test-hidden")})

	kinds := vstream.Kinds()
	pos := map[vstream.Kind]int{}
	for i, k := range kinds {
		pos[k] = i
	}
	if pos["test-hidden"] > pos["test-early"] || pos["test-early"] > pos["test-late"] {
		t.Errorf("Kinds not in priority order: %v", kinds)
	}

	s, err := vstream.Open("early")
	if err != nil {
		t.Fatalf("Open(early): %v", err)
	}
	if s.Kind() != "test-early" {
		t.Errorf("Open(early).Kind = %q", s.Kind())
	}
	s, err = vstream.Open("anything")
	if err != nil {
		t.Fatalf("Open(anything): %v", err)
	}
	if s.Kind() != "test-late" {
		t.Errorf("Open(anything).Kind = %q", s.Kind())
	}

	// Modules without a recognizer are reachable only by kind.
	s, err = vstream.OpenConfig(context.Background(), &vstream.Config{Source: "x", Kind: "test-hidden"})
	if err != nil || s.Kind() != "test-hidden" {
		t.Errorf("OpenConfig(test-hidden) = %v, %v", s, err)
	}

	if len(opened) != 3 {
		t.Errorf("opened = %v", opened)
	}
}

func TestRegister_Panics(t *testing.T) {
	open := func(context.Context, *vstream.Config) (vstream.Stream, error) { return nil, nil }
	vstream.Register(vstream.Module{Kind: "test-dup", Open: open})

	for name, m := range map[string]vstream.Module{
		"duplicate": {Kind: "test-dup", Open: open},
		"no opener": {Kind: "test-no-opener"},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			vstream.Register(m)
		})
	}
}

func TestOpenConfig_Errors(t *testing.T) {
	if _, err := vstream.OpenConfig(context.Background(), nil); err == nil {
		t.Error("nil config: expected error")
	}

	boom := errors.New("boom")
	vstream.Register(vstream.Module{
		Kind: "test-fail",
		Open: func(context.Context, *vstream.Config) (vstream.Stream, error) { return nil, boom },
	})
	_, err := vstream.OpenConfig(context.Background(), &vstream.Config{Source: "src", Kind: "test-fail"})
	var oe *vstream.OpenError
	if !errors.As(err, &oe) {
		t.Fatalf("err = %v, want *OpenError", err)
	}
	if oe.Kind != "test-fail" || oe.Source != "src" || !errors.Is(err, boom) {
		t.Errorf("err = %#v", oe)
	}
	if oe.Error() != `vstream: open test-fail "src": boom` {
		t.Errorf("Error() = %q", oe.Error())
	}
}

func TestMustOpen_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustOpen did not panic")
		}
	}()
	vstream.MustOpen("")
}
