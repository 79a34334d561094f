package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// ErrNullField rejects an explicit null for a field whose column is NOT NULL.
var ErrNullField = errors.New("null is not allowed for this field")

// Field is a JSON value that remembers whether its key was present.
// null is accepted only when T is a pointer, map or slice, where it clears
// the value.
type Field[T any] struct {
	Set   bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) && !nullable[T]() {
		return ErrNullField
	}
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

func nullable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	}
	return false
}

func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}
