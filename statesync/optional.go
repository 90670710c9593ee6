package statesync

import "encoding/json"

// Optional is the base case of the diff recursion: a two-state cell that is
// either absent, meaning "leave the field exactly as it is", or present,
// meaning "replace the field with this value".
//
// On the wire an absent Optional is an omitted JSON field. A field that is
// present but null decodes as present with the zero value, which for
// pointer-typed fields expresses "replace with none".
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional carrying a replacement value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None returns an absent Optional. The zero Optional is also absent.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the carried value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsZero reports absence. It makes `json:",omitzero"` drop absent fields when
// a diff is encoded.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

// UnmarshalJSON marks the cell present; the surrounding struct only invokes
// it for fields that appear in the message.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.present = true
	return nil
}

// MarshalJSON encodes the carried value. Absent cells encode as null, but are
// normally omitted entirely via omitzero.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// Update overwrites *field when diff carries a value and leaves it untouched
// otherwise. This is the per-field merge primitive; composite fields with
// their own diff types recurse through their Apply methods instead.
func Update[T any](field *T, diff Optional[T]) {
	if value, ok := diff.Get(); ok {
		*field = value
	}
}
