package gen

import (
	"runtime"
	"strings"
)

// Defaults for generator configuration.
const (
	// DefaultIndentSize is the number of spaces per indentation level.
	DefaultIndentSize = 2
	// DefaultCollectionImportPath is the module the decorator and Collection
	// imports are drawn from.
	DefaultCollectionImportPath = "@mikro-orm/core"
)

// Config holds the generator options for one Graph.
type Config struct {
	// IndentSize is the number of spaces per indentation level.
	IndentSize int
	// CollectionImportPath is the module specifier of the ORM core package
	// that decorators, Collection, and Cascade are imported from.
	CollectionImportPath string
	// Workers bounds the parallelism of GenerateContext and the file writer.
	Workers int
}

// Option configures code generation.
type Option func(*Config) error

// WithIndentSize sets the number of spaces per indentation level.
func WithIndentSize(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("IndentSize", n, "indent size must be positive")
		}
		c.IndentSize = n
		return nil
	}
}

// WithCollectionImportPath sets the module specifier for the ORM core import.
func WithCollectionImportPath(p string) Option {
	return func(c *Config) error {
		if p == "" {
			return NewConfigError("CollectionImportPath", nil, "import path cannot be empty")
		}
		c.CollectionImportPath = p
		return nil
	}
}

// WithWorkers sets the number of parallel workers for context-aware
// generation and file writing.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "worker count must be positive")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with defaults and the given options applied.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		IndentSize:           DefaultIndentSize,
		CollectionImportPath: DefaultCollectionImportPath,
		Workers:              runtime.GOMAXPROCS(0),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// indent returns one indentation level.
func (c *Config) indent() string {
	return strings.Repeat(" ", c.IndentSize)
}
