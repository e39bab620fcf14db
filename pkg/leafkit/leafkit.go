// Package leafkit provides flattening iterators over statically nested ranges.
//
// A flattening iterator walks a structure such as a slice of slices of slices
// and yields only the innermost, leaf elements,
// as if the structure were a single flat sequence.
// Nothing is materialized: the iterator holds one cursor per nesting level,
// and empty branches at any level are skipped silently.
//
// The depth is part of the type.
// Leaf is the innermost level, and Nested adds one level on top of its rest iterator:
//
//	Nested[outer cursor, outer element, middle cursor,
//		Nested[middle cursor, middle element, inner cursor,
//			Leaf[inner cursor, V], V], V]
//
// The Slices1..Slices4 and Lists2 aliases name the common shapes.
//
// The zero value of every iterator is the terminal sentinel.
// It compares equal to an iterator built from (end, end),
// and to any iterator that has been advanced to exhaustion.
// Dereferencing or advancing a terminal iterator is a caller error.
package leafkit

import (
	"go.llib.dev/leafkit/pkg/cursorkit"
)

// level is the contract between a Nested iterator and the iterator of its remaining levels.
type level[R, C, V any] interface {
	Equal(R) bool
	Next() R
	Get() *V
	over(begin, end C) R
}

// Span returns an iterator of type I positioned at the first leaf of [begin, end).
//
//	begin := leafkit.Span[leafkit.Slices3[int]](s.Begin(), s.End())
func Span[I interface{ over(begin, end C) I }, C any](begin, end C) I {
	var it I
	return it.over(begin, end)
}

// End returns the iterator of type I that denotes the end of a range whose end position is end.
// It compares equal to the zero I.
func End[I interface{ over(begin, end C) I }, C any](end C) I {
	return Span[I](end, end)
}

// Leaf is the innermost level of a flattening iterator.
// It dereferences to the elements of its range directly.
type Leaf[C cursorkit.Cursor[C, V], V any] struct {
	current C
	end     C
}

// NewLeaf returns a single level iterator over [begin, end).
func NewLeaf[C cursorkit.Cursor[C, V], V any](begin, end C) Leaf[C, V] {
	return Leaf[C, V]{current: begin, end: end}
}

func (Leaf[C, V]) over(begin, end C) Leaf[C, V] { return NewLeaf[C, V](begin, end) }

func (it Leaf[C, V]) Equal(oth Leaf[C, V]) bool { return it.current.Equal(oth.current) }

// Get returns a reference to the current leaf.
func (it Leaf[C, V]) Get() *V { return it.current.Get() }

// Value returns a copy of the current leaf.
func (it Leaf[C, V]) Value() V { return *it.Get() }

// Inc advances the iterator in place and returns it.
func (it *Leaf[C, V]) Inc() *Leaf[C, V] {
	it.current = it.current.Next()
	return it
}

// PostInc advances the iterator in place and returns its state from before the advance.
func (it *Leaf[C, V]) PostInc() Leaf[C, V] {
	prev := *it
	it.Inc()
	return prev
}

// Next returns the advanced iterator and leaves the receiver untouched.
func (it Leaf[C, V]) Next() Leaf[C, V] { return *it.Inc() }

// Terminal reports whether the iterator reached the end of its range.
// The default sentinel is terminal as well.
func (it Leaf[C, V]) Terminal() bool { return it.current.Equal(it.end) }

// Nested is a flattening level that walks a range whose elements are ranges themselves.
//
// C is the cursor of this level and E the element it dereferences to.
// E is a range whose positions are Q, and R is the iterator over the remaining levels,
// which is either a Leaf over Q or another Nested whose outer cursor is Q.
type Nested[C cursorkit.Cursor[C, E], E cursorkit.Range[Q], Q any, R level[R, Q, V], V any] struct {
	current C
	end     C
	rest    R
}

// NewNested returns an iterator positioned at the first leaf found under [begin, end).
// When no leaf exists, the result is equal to the terminal sentinel.
func NewNested[C cursorkit.Cursor[C, E], E cursorkit.Range[Q], Q any, R level[R, Q, V], V any](begin, end C) Nested[C, E, Q, R, V] {
	it := Nested[C, E, Q, R, V]{current: begin, end: end}
	it.validate()
	return it
}

func (Nested[C, E, Q, R, V]) over(begin, end C) Nested[C, E, Q, R, V] {
	return NewNested[C, E, Q, R, V](begin, end)
}

// validate moves current forward until its sub range holds a leaf,
// or until current reaches end, in which case rest becomes the sentinel.
// A sub range is empty when its opened rest already sits at the sub range's end,
// the zero value of a cursor may be a live position.
func (it *Nested[C, E, Q, R, V]) validate() {
	var sentinel R
	for !it.current.Equal(it.end) {
		it.rest = it.open()
		if !it.rest.Equal(it.exhausted()) {
			return
		}
		it.current = it.current.Next()
	}
	it.rest = sentinel
}

func (it Nested[C, E, Q, R, V]) open() R {
	sub := *it.current.Get()
	var rest R
	return rest.over(sub.Begin(), sub.End())
}

// exhausted is the rest iterator that sits at the end of current's sub range.
func (it Nested[C, E, Q, R, V]) exhausted() R {
	end := (*it.current.Get()).End()
	var rest R
	return rest.over(end, end)
}

// Equal compares two positions.
//
// A finished iterator has two representations:
// the default sentinel, where every cursor is the zero value,
// and an iterator whose current cursor reached its end.
// Both are treated as the same terminal position.
func (it Nested[C, E, Q, R, V]) Equal(oth Nested[C, E, Q, R, V]) bool {
	if !it.rest.Equal(oth.rest) {
		return false
	}
	var zero C
	return it.current.Equal(oth.current) ||
		(it.current.Equal(zero) && oth.current.Equal(oth.end)) ||
		(it.current.Equal(it.end) && oth.current.Equal(zero))
}

// Get returns a reference to the current leaf.
func (it Nested[C, E, Q, R, V]) Get() *V { return it.rest.Get() }

// Value returns a copy of the current leaf.
func (it Nested[C, E, Q, R, V]) Value() V { return *it.Get() }

// Inc advances the iterator to the next leaf in place and returns it.
func (it *Nested[C, E, Q, R, V]) Inc() *Nested[C, E, Q, R, V] {
	it.rest = it.rest.Next()
	if it.rest.Equal(it.exhausted()) {
		it.current = it.current.Next()
		it.validate()
	}
	return it
}

// PostInc advances the iterator in place and returns its state from before the advance.
func (it *Nested[C, E, Q, R, V]) PostInc() Nested[C, E, Q, R, V] {
	prev := *it
	it.Inc()
	return prev
}

// Next returns the iterator advanced to the next leaf and leaves the receiver untouched.
func (it Nested[C, E, Q, R, V]) Next() Nested[C, E, Q, R, V] { return *it.Inc() }

// Terminal reports whether the iterator has no more leaves.
// The default sentinel is terminal as well.
func (it Nested[C, E, Q, R, V]) Terminal() bool { return it.current.Equal(it.end) }
