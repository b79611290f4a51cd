package vstream

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Config holds the parameters of a single open.
type Config struct {
	// Source is the identifier to open, e.g. "dir:/music", "/tmp/", "song.mid".
	Source string `json:"source" yaml:"source"`

	// Kind forces a backend and skips recognition when non-empty.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Fs is the filesystem used by filesystem backends. Nil means the OS.
	Fs afero.Fs `json:"-" yaml:"-"`

	// Options holds driver-specific configuration.
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Filesystem returns cfg.Fs, or the OS filesystem when it is unset.
func (c *Config) Filesystem() afero.Fs {
	if c == nil || c.Fs == nil {
		return afero.NewOsFs()
	}
	return c.Fs
}

// Factory is a function that opens a [Stream] from a [Config].
type Factory func(ctx context.Context, cfg *Config) (Stream, error)

// Module describes one backend: how to recognize its sources and how to
// open them.
type Module struct {
	// Kind is the type tag of the streams the module produces.
	Kind Kind

	// Priority orders recognition; lower values are consulted first.
	Priority int

	// Check reports whether the module handles source. A nil Check means
	// the module is only reachable through Config.Kind.
	Check func(source string) bool

	// Open constructs the stream.
	Open Factory
}

var (
	mu      sync.RWMutex
	modules = make(map[Kind]Module)
)

// Register makes a backend module available.
// This is typically called from the driver package's init() function.
// It panics if called twice with the same kind or without an opener.
func Register(m Module) {
	mu.Lock()
	defer mu.Unlock()

	if m.Open == nil {
		panic(fmt.Sprintf("vstream: module %q has no opener", m.Kind))
	}
	if _, exists := modules[m.Kind]; exists {
		panic(fmt.Sprintf("vstream: module %q already registered", m.Kind))
	}
	modules[m.Kind] = m
}

// Modules returns the registered modules in recognition order: ascending
// priority, ties broken by kind.
func Modules() []Module {
	mu.RLock()
	defer mu.RUnlock()

	list := make([]Module, 0, len(modules))
	for _, m := range modules {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority < list[j].Priority
		}
		return list[i].Kind < list[j].Kind
	})
	return list
}

// Kinds returns the registered kinds in recognition order.
func Kinds() []Kind {
	list := Modules()
	kinds := make([]Kind, 0, len(list))
	for _, m := range list {
		kinds = append(kinds, m.Kind)
	}
	return kinds
}

// Lookup returns the module which would handle source.
func Lookup(source string) (Module, bool) {
	for _, m := range Modules() {
		if m.Check != nil && m.Check(source) {
			return m, true
		}
	}
	return Module{}, false
}

// Open opens source on the OS filesystem with the first module that
// recognizes it.
func Open(source string) (Stream, error) {
	return OpenConfig(context.Background(), &Config{Source: source})
}

// OpenConfig opens cfg.Source. When cfg.Kind is set the named module is used
// directly, otherwise the registry is consulted in priority order.
func OpenConfig(ctx context.Context, cfg *Config) (Stream, error) {
	if cfg == nil {
		return nil, fmt.Errorf("vstream: config must not be nil")
	}

	var (
		m  Module
		ok bool
	)
	if cfg.Kind != "" {
		mu.RLock()
		m, ok = modules[cfg.Kind]
		mu.RUnlock()
		if !ok {
			return nil, &OpenError{Kind: cfg.Kind, Source: cfg.Source,
				Err: fmt.Errorf("%w: unknown kind %q (forgotten import?)", ErrNoModule, cfg.Kind)}
		}
	} else {
		m, ok = Lookup(cfg.Source)
		if !ok {
			return nil, &OpenError{Source: cfg.Source, Err: ErrNoModule}
		}
	}

	Logger().Debug("opening source",
		zap.String("source", cfg.Source),
		zap.Stringer("kind", m.Kind))

	s, err := m.Open(ctx, cfg)
	if err != nil {
		Logger().Debug("open failed",
			zap.String("source", cfg.Source),
			zap.Stringer("kind", m.Kind),
			zap.Error(err))
		return nil, &OpenError{Kind: m.Kind, Source: cfg.Source, Err: err}
	}
	return s, nil
}

// MustOpen is like [Open] but panics on error.
func MustOpen(source string) Stream {
	s, err := Open(source)
	if err != nil {
		panic(err)
	}
	return s
}
