package cursorkit

// Slice is a slice that can be traversed with Index cursors.
// Nested slices of Slice form the multi-level structures leafkit flattens:
//
//	Slice[Slice[Slice[int]]]{{{1, 2}, {3}}, {{4}}}
type Slice[T any] []T

func (s Slice[T]) Begin() Index[T] { return Index[T]{s: s} }

func (s Slice[T]) End() Index[T] { return Index[T]{s: s, i: len(s)} }

func (s Slice[T]) Len() int { return len(s) }

// Index is a position inside a Slice.
//
// Two Index values are equal when they point into the same backing array at the same offset.
// Every position of an empty slice is equal to the zero Index.
type Index[T any] struct {
	s []T
	i int
}

func (c Index[T]) Equal(oth Index[T]) bool {
	return c.i == oth.i && sameArray(c.s, oth.s)
}

func (c Index[T]) Next() Index[T] {
	c.i++
	return c
}

func (c Index[T]) Get() *T { return &c.s[c.i] }

// Offset returns the distance of the position from the start of its slice.
func (c Index[T]) Offset() int { return c.i }

func sameArray[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
