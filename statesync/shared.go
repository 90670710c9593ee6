// Package statesync implements the incremental state synchronization
// primitives used to keep a local copy of the player state current from a
// stream of partial diff messages.
//
// The two building blocks are Optional, a two-state "unchanged or replace"
// diff cell, and Shared, a shared-ownership handle whose equality is based on
// handle identity rather than value equality. Shared lets the render layer
// answer "did this subtree change at all?" in O(1) instead of deep-comparing
// a station's full track list on every incoming diff.
package statesync

// Shared is a cheaply-copyable handle to an immutable value.
//
// Copying a Shared (including passing it by value) produces a second handle
// to the same underlying instance. Two handles compare Equal if and only if
// they reference the identical instance; two handles constructed
// independently from equal values are never Equal. Diff application replaces
// the held instance wholesale, so a replacement always changes identity even
// when the new value is equal in content to the old one.
//
// The value behind a Shared must not be mutated through the pointer returned
// by Get. There is no enforcement; the whole synchronization design relies on
// it.
type Shared[T any] struct {
	ptr *T
}

// NewShared creates a fresh handle owning a new instance of value.
func NewShared[T any](value T) Shared[T] {
	return Shared[T]{ptr: &value}
}

// Get returns read-only access to the contained value. A zero Shared yields a
// pointer to the zero value of T.
func (s Shared[T]) Get() *T {
	if s.ptr == nil {
		var zero T
		return &zero
	}
	return s.ptr
}

// Clone returns a second handle to the same underlying instance. It is
// equivalent to copying the handle and exists to make call sites explicit.
func (s Shared[T]) Clone() Shared[T] {
	return s
}

// Equal reports whether both handles reference the identical underlying
// instance. It never compares contents.
func (s Shared[T]) Equal(other Shared[T]) bool {
	return s.ptr == other.ptr
}

// ApplyDiff replaces the held instance with a fresh one when the diff carries
// a value, and is a no-op otherwise. The replacement changes the handle's
// identity unconditionally; downstream consumers rely on identity inequality
// to detect that the subtree changed.
func (s *Shared[T]) ApplyDiff(diff Optional[T]) {
	if value, ok := diff.Get(); ok {
		*s = NewShared(value)
	}
}
