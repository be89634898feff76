package model

import "encoding/json"

// Optional records whether a JSON field was present and whether it was null,
// so a patch can tell "absent" from "explicitly cleared".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// present reports whether the field carries a value to write.
func (o Optional[T]) present() bool {
	return o.Set && !o.Null
}

// applyNullable writes o into *dst, clearing it on explicit null.
func applyNullable[T any](dst **T, o Optional[T]) {
	switch {
	case !o.Set:
	case o.Null:
		*dst = nil
	default:
		v := o.Value
		*dst = &v
	}
}
