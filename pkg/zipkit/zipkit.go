// Package zipkit provides lockstep iterators.
//
// A lockstep iterator advances several independent cursors together
// and dereferences to a tuple holding a reference to each cursor's current element.
// The family has a fixed arity per type, from Zip1 to Zip4.
//
// # Termination
//
// A lockstep iterator does not track where its components end.
// The caller builds a second iterator from every range's end position and compares against it.
// Equal reports true when any component equals its counterpart,
// so when the begin and end iterators come from the same ranges,
// iteration stops as soon as the shortest range is exhausted.
//
// Incrementing advances every component unconditionally.
// Ranges of unequal length are therefore only safe when the caller stops at the first component
// that reaches its end, which is exactly what comparing against the matching end iterator does.
// Comparing positions that were not built from the same ranges has no meaningful result.
package zipkit

import "go.llib.dev/leafkit/pkg/cursorkit"

// Tuple1 holds a reference to the current element of every component of a Zip1.
type Tuple1[A any] struct {
	V1 *A
}

// Values returns copies of the referenced elements.
func (t Tuple1[A]) Values() A { return *t.V1 }

// Zip1 wraps a single cursor. It is the degenerate lockstep iterator,
// useful when the arity is chosen generically.
type Zip1[I1 cursorkit.Cursor[I1, A], A any] struct {
	i1 I1
}

// New1 returns a lockstep iterator over the given positions.
func New1[I1 cursorkit.Cursor[I1, A], A any](i1 I1) Zip1[I1, A] {
	return Zip1[I1, A]{i1: i1}
}

// FromRanges1 returns the begin and end lockstep iterators over the given ranges.
func FromRanges1[R1 cursorkit.Range[I1], I1 cursorkit.Cursor[I1, A], A any](r1 R1) (begin, end Zip1[I1, A]) {
	return New1(r1.Begin()), New1(r1.End())
}

// Equal reports whether any component equals its counterpart in oth.
func (z Zip1[I1, A]) Equal(oth Zip1[I1, A]) bool {
	return z.i1.Equal(oth.i1)
}

// Get returns the tuple of references to the current elements, in declared order.
func (z Zip1[I1, A]) Get() *Tuple1[A] {
	return &Tuple1[A]{V1: z.i1.Get()}
}

func (z Zip1[I1, A]) Value() Tuple1[A] { return *z.Get() }

// Inc advances every component in declared order and returns the receiver.
func (z *Zip1[I1, A]) Inc() *Zip1[I1, A] {
	z.i1 = z.i1.Next()
	return z
}

// PostInc advances every component and returns the iterator from before the advance.
func (z *Zip1[I1, A]) PostInc() Zip1[I1, A] {
	prev := *z
	z.Inc()
	return prev
}

func (z Zip1[I1, A]) Next() Zip1[I1, A] { return *z.Inc() }

// Cursors returns the component positions.
func (z Zip1[I1, A]) Cursors() I1 { return z.i1 }

// Tuple2 holds a reference to the current element of every component of a Zip2.
type Tuple2[A, B any] struct {
	V1 *A
	V2 *B
}

// Values returns copies of the referenced elements.
func (t Tuple2[A, B]) Values() (A, B) { return *t.V1, *t.V2 }

// Zip2 advances two cursors in lockstep.
type Zip2[I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any] struct {
	i1 I1
	i2 I2
}

// New2 returns a lockstep iterator over the given positions.
func New2[I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any](i1 I1, i2 I2) Zip2[I1, A, I2, B] {
	return Zip2[I1, A, I2, B]{i1: i1, i2: i2}
}

// FromRanges2 returns the begin and end lockstep iterators over the given ranges.
func FromRanges2[R1 cursorkit.Range[I1], R2 cursorkit.Range[I2], I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any](r1 R1, r2 R2) (begin, end Zip2[I1, A, I2, B]) {
	return New2(r1.Begin(), r2.Begin()), New2(r1.End(), r2.End())
}

// Equal reports whether any component equals its counterpart in oth.
func (z Zip2[I1, A, I2, B]) Equal(oth Zip2[I1, A, I2, B]) bool {
	return z.i1.Equal(oth.i1) ||
		z.i2.Equal(oth.i2)
}

// Get returns the tuple of references to the current elements, in declared order.
func (z Zip2[I1, A, I2, B]) Get() *Tuple2[A, B] {
	return &Tuple2[A, B]{V1: z.i1.Get(), V2: z.i2.Get()}
}

func (z Zip2[I1, A, I2, B]) Value() Tuple2[A, B] { return *z.Get() }

// Inc advances every component in declared order and returns the receiver.
func (z *Zip2[I1, A, I2, B]) Inc() *Zip2[I1, A, I2, B] {
	z.i1 = z.i1.Next()
	z.i2 = z.i2.Next()
	return z
}

// PostInc advances every component and returns the iterator from before the advance.
func (z *Zip2[I1, A, I2, B]) PostInc() Zip2[I1, A, I2, B] {
	prev := *z
	z.Inc()
	return prev
}

func (z Zip2[I1, A, I2, B]) Next() Zip2[I1, A, I2, B] { return *z.Inc() }

// Cursors returns the component positions.
func (z Zip2[I1, A, I2, B]) Cursors() (I1, I2) { return z.i1, z.i2 }

// Tuple3 holds a reference to the current element of every component of a Zip3.
type Tuple3[A, B, C any] struct {
	V1 *A
	V2 *B
	V3 *C
}

// Values returns copies of the referenced elements.
func (t Tuple3[A, B, C]) Values() (A, B, C) { return *t.V1, *t.V2, *t.V3 }

// Zip3 advances three cursors in lockstep.
type Zip3[I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any, I3 cursorkit.Cursor[I3, C], C any] struct {
	i1 I1
	i2 I2
	i3 I3
}

// New3 returns a lockstep iterator over the given positions.
func New3[I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any, I3 cursorkit.Cursor[I3, C], C any](i1 I1, i2 I2, i3 I3) Zip3[I1, A, I2, B, I3, C] {
	return Zip3[I1, A, I2, B, I3, C]{i1: i1, i2: i2, i3: i3}
}

// FromRanges3 returns the begin and end lockstep iterators over the given ranges.
func FromRanges3[R1 cursorkit.Range[I1], R2 cursorkit.Range[I2], R3 cursorkit.Range[I3], I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any, I3 cursorkit.Cursor[I3, C], C any](r1 R1, r2 R2, r3 R3) (begin, end Zip3[I1, A, I2, B, I3, C]) {
	return New3(r1.Begin(), r2.Begin(), r3.Begin()), New3(r1.End(), r2.End(), r3.End())
}

// Equal reports whether any component equals its counterpart in oth.
func (z Zip3[I1, A, I2, B, I3, C]) Equal(oth Zip3[I1, A, I2, B, I3, C]) bool {
	return z.i1.Equal(oth.i1) ||
		z.i2.Equal(oth.i2) ||
		z.i3.Equal(oth.i3)
}

// Get returns the tuple of references to the current elements, in declared order.
func (z Zip3[I1, A, I2, B, I3, C]) Get() *Tuple3[A, B, C] {
	return &Tuple3[A, B, C]{V1: z.i1.Get(), V2: z.i2.Get(), V3: z.i3.Get()}
}

func (z Zip3[I1, A, I2, B, I3, C]) Value() Tuple3[A, B, C] { return *z.Get() }

// Inc advances every component in declared order and returns the receiver.
func (z *Zip3[I1, A, I2, B, I3, C]) Inc() *Zip3[I1, A, I2, B, I3, C] {
	z.i1 = z.i1.Next()
	z.i2 = z.i2.Next()
	z.i3 = z.i3.Next()
	return z
}

// PostInc advances every component and returns the iterator from before the advance.
func (z *Zip3[I1, A, I2, B, I3, C]) PostInc() Zip3[I1, A, I2, B, I3, C] {
	prev := *z
	z.Inc()
	return prev
}

func (z Zip3[I1, A, I2, B, I3, C]) Next() Zip3[I1, A, I2, B, I3, C] { return *z.Inc() }

// Cursors returns the component positions.
func (z Zip3[I1, A, I2, B, I3, C]) Cursors() (I1, I2, I3) { return z.i1, z.i2, z.i3 }

// Tuple4 holds a reference to the current element of every component of a Zip4.
type Tuple4[A, B, C, D any] struct {
	V1 *A
	V2 *B
	V3 *C
	V4 *D
}

// Values returns copies of the referenced elements.
func (t Tuple4[A, B, C, D]) Values() (A, B, C, D) { return *t.V1, *t.V2, *t.V3, *t.V4 }

// Zip4 advances four cursors in lockstep.
type Zip4[I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any, I3 cursorkit.Cursor[I3, C], C any, I4 cursorkit.Cursor[I4, D], D any] struct {
	i1 I1
	i2 I2
	i3 I3
	i4 I4
}

// New4 returns a lockstep iterator over the given positions.
func New4[I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any, I3 cursorkit.Cursor[I3, C], C any, I4 cursorkit.Cursor[I4, D], D any](i1 I1, i2 I2, i3 I3, i4 I4) Zip4[I1, A, I2, B, I3, C, I4, D] {
	return Zip4[I1, A, I2, B, I3, C, I4, D]{i1: i1, i2: i2, i3: i3, i4: i4}
}

// FromRanges4 returns the begin and end lockstep iterators over the given ranges.
func FromRanges4[R1 cursorkit.Range[I1], R2 cursorkit.Range[I2], R3 cursorkit.Range[I3], R4 cursorkit.Range[I4], I1 cursorkit.Cursor[I1, A], A any, I2 cursorkit.Cursor[I2, B], B any, I3 cursorkit.Cursor[I3, C], C any, I4 cursorkit.Cursor[I4, D], D any](r1 R1, r2 R2, r3 R3, r4 R4) (begin, end Zip4[I1, A, I2, B, I3, C, I4, D]) {
	return New4(r1.Begin(), r2.Begin(), r3.Begin(), r4.Begin()), New4(r1.End(), r2.End(), r3.End(), r4.End())
}

// Equal reports whether any component equals its counterpart in oth.
func (z Zip4[I1, A, I2, B, I3, C, I4, D]) Equal(oth Zip4[I1, A, I2, B, I3, C, I4, D]) bool {
	return z.i1.Equal(oth.i1) ||
		z.i2.Equal(oth.i2) ||
		z.i3.Equal(oth.i3) ||
		z.i4.Equal(oth.i4)
}

// Get returns the tuple of references to the current elements, in declared order.
func (z Zip4[I1, A, I2, B, I3, C, I4, D]) Get() *Tuple4[A, B, C, D] {
	return &Tuple4[A, B, C, D]{V1: z.i1.Get(), V2: z.i2.Get(), V3: z.i3.Get(), V4: z.i4.Get()}
}

func (z Zip4[I1, A, I2, B, I3, C, I4, D]) Value() Tuple4[A, B, C, D] { return *z.Get() }

// Inc advances every component in declared order and returns the receiver.
func (z *Zip4[I1, A, I2, B, I3, C, I4, D]) Inc() *Zip4[I1, A, I2, B, I3, C, I4, D] {
	z.i1 = z.i1.Next()
	z.i2 = z.i2.Next()
	z.i3 = z.i3.Next()
	z.i4 = z.i4.Next()
	return z
}

// PostInc advances every component and returns the iterator from before the advance.
func (z *Zip4[I1, A, I2, B, I3, C, I4, D]) PostInc() Zip4[I1, A, I2, B, I3, C, I4, D] {
	prev := *z
	z.Inc()
	return prev
}

func (z Zip4[I1, A, I2, B, I3, C, I4, D]) Next() Zip4[I1, A, I2, B, I3, C, I4, D] { return *z.Inc() }

// Cursors returns the component positions.
func (z Zip4[I1, A, I2, B, I3, C, I4, D]) Cursors() (I1, I2, I3, I4) { return z.i1, z.i2, z.i3, z.i4 }
