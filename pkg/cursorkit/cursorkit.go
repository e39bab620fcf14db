// Package cursorkit defines the positional iterator model used across leafkit.
//
// A cursor is a position inside a forward traversable range.
// Unlike an iter.Seq, a cursor is a plain value:
// it can be copied, compared against another position and advanced one step at a time.
// A range is described by two cursors, its begin and its end,
// and traversal is the act of advancing begin until it compares equal to end.
//
// The zero value of every cursor type is its default value.
// A default cursor is only meaningful for comparison,
// dereferencing or advancing it is a caller error.
package cursorkit

// Cursor is the capability set every position type must provide.
//
// Implementations are expected to have value semantics:
// Next returns the advanced position and leaves the receiver untouched,
// so advancing one copy never affects another copy.
type Cursor[C any, V any] interface {
	// Equal reports whether the two positions denote the same place.
	Equal(C) bool
	// Next returns the position that follows the receiver.
	Next() C
	// Get returns a reference to the element under the position.
	Get() *V
}

// Range is a traversable range that exposes its begin and end positions.
type Range[C any] interface {
	Begin() C
	End() C
}

// IsZero reports whether the cursor equals its type's default value.
func IsZero[C Cursor[C, V], V any](c C) bool {
	var zero C
	return c.Equal(zero)
}
