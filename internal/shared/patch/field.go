// Package patch models partial-update payloads. A Field records whether the
// client sent the key at all, so an omitted field is never confused with one
// explicitly set to its zero value.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// ErrNullNotAllowed is returned when JSON null is sent for a non-nullable field.
var ErrNullNotAllowed = errors.New("field cannot be null")

var nullLiteral = []byte("null")

// Field is an optional value in an update payload. Use Field[*T] for columns
// that may be cleared with an explicit null.
type Field[T any] struct {
	Value T
	Set   bool
}

// Of returns a Field marked as present.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// UnmarshalJSON marks the field present. It is only invoked when the key
// appears in the document.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) && !nillable[T]() {
		return ErrNullNotAllowed
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = v
	f.Set = true
	return nil
}

// MarshalJSON renders the value, or null when the field is absent.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return nullLiteral, nil
	}
	return json.Marshal(f.Value)
}

// Get returns the value and whether it was supplied.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Set
}

// Or returns the value when supplied, otherwise def.
func (f Field[T]) Or(def T) T {
	if f.Set {
		return f.Value
	}
	return def
}

// ValidationValue exposes the field to the validator: a typed nil pointer
// when absent, so "omitnil" rules skip it, and the raw value otherwise.
func (f Field[T]) ValidationValue() any {
	if !f.Set {
		return (*T)(nil)
	}
	return f.Value
}

// Validatable is implemented by every Field instantiation.
type Validatable interface {
	ValidationValue() any
}

func nillable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	default:
		return false
	}
}
