// Package config provides glide's typed settings registry and JSON-backed
// configuration store.
//
// Settings are registered with a dot-separated path, a type, and a default.
// Values read from the configuration file are validated against the
// registry; unset values fall back to the registered default, so every
// lookup is total.
package config

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrUnknownSetting is returned for paths not present in the registry.
	ErrUnknownSetting = errors.New("config: unknown setting")

	// ErrTypeMismatch is returned when a value does not match the
	// registered setting type.
	ErrTypeMismatch = errors.New("config: type mismatch")
)

// Type enumerates the value types a setting may hold.
type Type int

const (
	// TypeBool is a boolean setting.
	TypeBool Type = iota
	// TypeInt is an integer setting.
	TypeInt
	// TypeFloat is a floating point setting.
	TypeFloat
	// TypeString is a string setting.
	TypeString
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Setting describes one registered configuration value.
type Setting struct {
	// Path is the dot-separated location of the setting ("scroll.easing").
	Path string

	// Type is the value type.
	Type Type

	// Default is returned when the configuration file does not set the
	// path. Must match Type.
	Default any

	// Description documents the setting.
	Description string
}

// validate checks that a candidate value matches the setting's type.
func (s Setting) validate(value any) error {
	ok := false
	switch s.Type {
	case TypeBool:
		_, ok = value.(bool)
	case TypeInt:
		switch value.(type) {
		case int, int64:
			ok = true
		}
	case TypeFloat:
		switch value.(type) {
		case float64, int, int64:
			ok = true
		}
	case TypeString:
		_, ok = value.(string)
	}
	if !ok {
		return fmt.Errorf("%w: %s wants %s, got %T", ErrTypeMismatch, s.Path, s.Type, value)
	}
	return nil
}
