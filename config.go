package jetvalue

import (
	"context"

	"github.com/jetvalue/jetvalue/escape"
)

// Escape selects the string-escape profile used for the whole encode
// call.
type Escape = escape.Profile

// Escape profile constants, re-exported from package escape so that
// callers configuring an encode call don't need to import it directly.
const (
	EscapeJSON       = escape.JSON
	EscapeJavaScript = escape.JavaScript
	EscapeHTMLSafe   = escape.HTMLSafe
	EscapeUnicode    = escape.Unicode
)

// MapMode selects whether object emission deduplicates keys.
type MapMode uint8

// Map modes.
const (
	// MapsNaive emits every pair in source order, duplicates included.
	MapsNaive MapMode = iota
	// MapsStrict rejects an object whose escaped key bytes repeat at
	// the same nesting level.
	MapsStrict
)

// DefaultMaxDepth bounds the value walker's recursion, the way the
// teacher's encoder bounds pointer-cycle bookkeeping past a threshold
// (ozanh-ugo's startDetectingCyclesAfter) -- here applied to nesting
// depth, since an immutable Value tree has no pointers to cycle through.
const DefaultMaxDepth = 10000

// Config is the immutable configuration of one encode call, built from a
// list of Option values the way the teacher's encOpts is built from
// Option in options.go.
type Config struct {
	escape   Escape
	maps     MapMode
	ctx      context.Context
	maxDepth int
}

// Option overrides one field of the default Config.
type Option func(*Config)

// WithEscape selects the string-escape profile. The default is
// EscapeJSON.
func WithEscape(e Escape) Option {
	return func(c *Config) { c.escape = e }
}

// WithMaps selects the object key-deduplication mode. The default is
// MapsNaive.
func WithMaps(m MapMode) Option {
	return func(c *Config) { c.maps = m }
}

// WithContext sets the context passed to extension hooks during
// encoding.
func WithContext(ctx context.Context) Option {
	return func(c *Config) { c.ctx = ctx }
}

// WithMaxDepth overrides the recursion guard of the value walker.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.maxDepth = n }
}

func defaultConfig() Config {
	return Config{
		escape:   EscapeJSON,
		maps:     MapsNaive,
		ctx:      context.Background(),
		maxDepth: DefaultMaxDepth,
	}
}

func buildConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Escape returns the configured string-escape profile.
func (c Config) Escape() Escape { return c.escape }

// Maps returns the configured map deduplication mode.
func (c Config) Maps() MapMode { return c.maps }

// Context returns the context available to extension hooks.
func (c Config) Context() context.Context { return c.ctx }
