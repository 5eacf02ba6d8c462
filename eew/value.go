package eew

import (
	"encoding/json"
	"fmt"
)

// UnspecifiedLabel is the default text for fields that are unknown or not set (不明又は未設定).
const UnspecifiedLabel = "不明又は未設定"

// Value holds the decoded value of a field that may also be unspecified in the telegram.
type Value[T any] struct {
	value     T
	specified bool
}

// Specified returns a Value that holds v.
func Specified[T any](v T) Value[T] {
	return Value[T]{value: v, specified: true}
}

// Unspecified returns a Value that holds nothing.
func Unspecified[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and true, or the zero value and false if the value is unspecified.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.specified
}

// OrElse returns the value or the given fallback if the value is unspecified.
func (v Value[T]) OrElse(fallback T) T {
	if !v.specified {
		return fallback
	}
	return v.value
}

// IsSpecified reports whether the value is set.
func (v Value[T]) IsSpecified() bool {
	return v.specified
}

func (v Value[T]) String() string {
	if !v.specified {
		return UnspecifiedLabel
	}
	return fmt.Sprint(v.value)
}

// MarshalJSON encodes an unspecified value as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.specified {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
