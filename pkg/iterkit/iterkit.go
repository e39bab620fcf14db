// Package iterkit provides single-pass algorithms over begin/end cursor pairs.
//
// # Summary
//
// A cursor pair describes a range without saying where the data comes from:
// a slice, a linked list, nested buckets of a database, or a flattening iterator over any of these.
// The algorithms in this package only rely on the forward iterator surface
// (equality, dereference and increment), so they work with every cursorkit.Cursor,
// including the leafkit and zipkit adaptors.
//
// Seq and SeqPtr bridge a cursor pair into the iter.Seq world,
// so the range can be consumed with a plain for-range loop.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"errors"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/leafkit/pkg/cursorkit"
)

// Break can be returned from a ForEach callback to stop the iteration without an error.
const Break errorkit.Error = "iterkit:break"

// Distance counts the increments needed to get from begin to end.
//
// Good when all you want is to count the elements of a range but don't want to do anything else.
func Distance[C cursorkit.Cursor[C, V], V any](begin, end C) int {
	var n int
	for c := begin; !c.Equal(end); c = c.Next() {
		n++
	}
	return n
}

// ForEach calls fn with a reference to every element of [begin, end).
// Returning Break from fn stops the iteration, any other error stops it and is returned.
func ForEach[C cursorkit.Cursor[C, V], V any](begin, end C, fn func(*V) error) error {
	for c := begin; !c.Equal(end); c = c.Next() {
		err := fn(c.Get())
		if errors.Is(err, Break) {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Collect copies every element of [begin, end) into a new slice.
func Collect[C cursorkit.Cursor[C, V], V any](begin, end C) []V {
	var vs = make([]V, 0)
	for c := begin; !c.Equal(end); c = c.Next() {
		vs = append(vs, *c.Get())
	}
	return vs
}

// CopyOut copies the elements of [begin, end) into dst until either runs out,
// and returns the number of copied elements.
func CopyOut[C cursorkit.Cursor[C, V], V any](begin, end C, dst []V) int {
	var n int
	for c := begin; n < len(dst) && !c.Equal(end); c = c.Next() {
		dst[n] = *c.Get()
		n++
	}
	return n
}

// Find returns the position of the first element that matches the filter.
// When nothing matches, the returned position is end.
func Find[C cursorkit.Cursor[C, V], V any](begin, end C, filter func(V) bool) (C, bool) {
	for c := begin; !c.Equal(end); c = c.Next() {
		if filter(*c.Get()) {
			return c, true
		}
	}
	return end, false
}

// Seq returns an iter.Seq over copies of the elements of [begin, end).
// Since cursors are values, the returned sequence can be iterated any number of times.
func Seq[C cursorkit.Cursor[C, V], V any](begin, end C) iter.Seq[V] {
	return func(yield func(V) bool) {
		for c := begin; !c.Equal(end); c = c.Next() {
			if !yield(*c.Get()) {
				return
			}
		}
	}
}

// SeqPtr returns an iter.Seq over references to the elements of [begin, end).
func SeqPtr[C cursorkit.Cursor[C, V], V any](begin, end C) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for c := begin; !c.Equal(end); c = c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// Enumerate returns an iter.Seq2 that pairs every element with its offset from begin.
func Enumerate[C cursorkit.Cursor[C, V], V any](begin, end C) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		var i int
		for c := begin; !c.Equal(end); c = c.Next() {
			if !yield(i, *c.Get()) {
				return
			}
			i++
		}
	}
}
