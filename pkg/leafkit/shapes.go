package leafkit

import "go.llib.dev/leafkit/pkg/cursorkit"

type (
	slice2[V any] = cursorkit.Slice[cursorkit.Slice[V]]
	slice3[V any] = cursorkit.Slice[slice2[V]]
)

// Slices1 walks a cursorkit.Slice[V].
type Slices1[V any] = Leaf[cursorkit.Index[V], V]

// Slices2 walks the leaves of a cursorkit.Slice[cursorkit.Slice[V]].
type Slices2[V any] = Nested[cursorkit.Index[cursorkit.Slice[V]], cursorkit.Slice[V], cursorkit.Index[V], Slices1[V], V]

// Slices3 walks the leaves of three levels of cursorkit.Slice.
type Slices3[V any] = Nested[cursorkit.Index[slice2[V]], slice2[V], cursorkit.Index[cursorkit.Slice[V]], Slices2[V], V]

// Slices4 walks the leaves of four levels of cursorkit.Slice.
type Slices4[V any] = Nested[cursorkit.Index[slice3[V]], slice3[V], cursorkit.Index[slice2[V]], Slices3[V], V]

// Lists2 walks the leaves of a cursorkit.List[cursorkit.List[V]].
type Lists2[V any] = Nested[cursorkit.Elem[cursorkit.List[V]], cursorkit.List[V], cursorkit.Elem[V], Leaf[cursorkit.Elem[V], V], V]

// FromSlices2 returns the begin and end iterators over the leaves of s.
func FromSlices2[V any](s slice2[V]) (begin, end Slices2[V]) {
	return Span[Slices2[V]](s.Begin(), s.End()), End[Slices2[V]](s.End())
}

// FromSlices3 returns the begin and end iterators over the leaves of s.
func FromSlices3[V any](s slice3[V]) (begin, end Slices3[V]) {
	return Span[Slices3[V]](s.Begin(), s.End()), End[Slices3[V]](s.End())
}

// FromSlices4 returns the begin and end iterators over the leaves of s.
func FromSlices4[V any](s cursorkit.Slice[slice3[V]]) (begin, end Slices4[V]) {
	return Span[Slices4[V]](s.Begin(), s.End()), End[Slices4[V]](s.End())
}

// FromLists2 returns the begin and end iterators over the leaves of l.
func FromLists2[V any](l cursorkit.List[cursorkit.List[V]]) (begin, end Lists2[V]) {
	return Span[Lists2[V]](l.Begin(), l.End()), End[Lists2[V]](l.End())
}
