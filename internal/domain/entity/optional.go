// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// Optional is a present-or-absent wrapper for partial-update fields.
// It distinguishes "caller never mentioned this field" from "caller
// explicitly set it", including explicitly setting a zero value such
// as an empty list. A JSON key that is present decodes as set; a JSON
// null decodes as set with the zero value.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether the value was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// ValueOr returns the supplied value, or fallback when absent.
func (o Optional[T]) ValueOr(fallback T) T {
	if o.set {
		return o.value
	}

	return fallback
}

// UnmarshalJSON marks the field as set whenever its key appears in the
// request body.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		var zero T
		o.value = zero

		return nil
	}

	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes the wrapped value, or null when absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}
