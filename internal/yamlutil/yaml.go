// Package yamlutil keeps the YAML library behind a small surface so the
// config loader and CLI output never import it directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps the size of documents accepted by Decode.
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func checkInput(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}
	return nil
}

// Decode reads data into v, ignoring unknown keys.
func Decode(data []byte, v any) error {
	return decode(data, v)
}

// DecodeStrict reads data into v and fails on keys v does not declare.
func DecodeStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %s", Describe(err))
	}
	return nil
}

// Encode renders v as block-style YAML.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.UseLiteralStyleIfMultiline(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// Describe turns a decode error into a one-line message with position
// information when the library provides it.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return yaml.FormatError(err, false, false)
}
