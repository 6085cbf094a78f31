package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("ormgen: missing configuration")
	// ErrInvalidSnapshot indicates a malformed diagram snapshot.
	ErrInvalidSnapshot = errors.New("ormgen: invalid snapshot")
	// ErrGenerationFailed indicates a failure writing or caching output.
	ErrGenerationFailed = errors.New("ormgen: code generation failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("ormgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("ormgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// SnapshotError represents a malformed snapshot error.
type SnapshotError struct {
	Node    string // node name or id, if applicable
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	var b strings.Builder
	b.WriteString("ormgen: snapshot error")
	if e.Node != "" {
		b.WriteString(" on node ")
		b.WriteString(e.Node)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SnapshotError.
func (e *SnapshotError) Is(target error) bool {
	return target == ErrInvalidSnapshot
}

// NewSnapshotError creates a new SnapshotError.
func NewSnapshotError(node, message string, cause error) *SnapshotError {
	return &SnapshotError{
		Node:    node,
		Message: message,
		Cause:   cause,
	}
}

// GenerationError represents a failure in the write or cache path.
type GenerationError struct {
	Phase   string // "write", "cache", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("ormgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsSnapshotError reports whether the error is a SnapshotError.
func IsSnapshotError(err error) bool {
	var snapErr *SnapshotError
	return errors.As(err, &snapErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
