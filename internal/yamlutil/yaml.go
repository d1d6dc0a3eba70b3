// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Callers never import the YAML library directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return &SyntaxError{err: err}
	}
	return nil
}

// Unmarshal decodes data into v. Unknown fields are ignored.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// Marshal encodes v as block-style YAML.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// SyntaxError is a decoding failure reported by the YAML library.
type SyntaxError struct {
	err error
}

func (e *SyntaxError) Error() string {
	return "yamlutil: " + e.err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}

// Pretty renders the error with the offending source lines.
func (e *SyntaxError) Pretty() string {
	return yaml.FormatError(e.err, false, true)
}

// FormatError returns a multi-line description of err including the
// offending source when err came from a decode; otherwise err.Error().
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Pretty()
	}
	return err.Error()
}
