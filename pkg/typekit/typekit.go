// Package typekit provides lookups over fixed, ordered lists of types.
//
// A type list is a zero sized value such as L3[A, B, C]{}.
// First and Last return the zero value of the list's first and last type,
// which lets generic code name those types through ordinary type inference:
//
//	var leaf = typekit.Last(typekit.L3[[]string, string, byte]{}) // byte
package typekit

import "reflect"

// List is a non-empty ordered list of types whose first type is F and last type is L.
type List[F, L any] interface {
	first() F
	last() L
	types() []reflect.Type
}

type L1[A any] struct{}

func (L1[A]) first() (_ A)          { return }
func (L1[A]) last() (_ A)           { return }
func (L1[A]) types() []reflect.Type { return []reflect.Type{typeOf[A]()} }

type L2[A, B any] struct{}

func (L2[A, B]) first() (_ A)          { return }
func (L2[A, B]) last() (_ B)           { return }
func (L2[A, B]) types() []reflect.Type { return append(L1[A]{}.types(), typeOf[B]()) }

type L3[A, B, C any] struct{}

func (L3[A, B, C]) first() (_ A)          { return }
func (L3[A, B, C]) last() (_ C)           { return }
func (L3[A, B, C]) types() []reflect.Type { return append(L2[A, B]{}.types(), typeOf[C]()) }

type L4[A, B, C, D any] struct{}

func (L4[A, B, C, D]) first() (_ A)          { return }
func (L4[A, B, C, D]) last() (_ D)           { return }
func (L4[A, B, C, D]) types() []reflect.Type { return append(L3[A, B, C]{}.types(), typeOf[D]()) }

type L5[A, B, C, D, E any] struct{}

func (L5[A, B, C, D, E]) first() (_ A) { return }
func (L5[A, B, C, D, E]) last() (_ E)  { return }
func (L5[A, B, C, D, E]) types() []reflect.Type {
	return append(L4[A, B, C, D]{}.types(), typeOf[E]())
}

// First returns the zero value of the first type in the list.
func First[F, L any](l List[F, L]) F { return l.first() }

// Last returns the zero value of the last type in the list.
func Last[F, L any](l List[F, L]) L { return l.last() }

// Len returns the number of types in the list.
func Len[F, L any](l List[F, L]) int { return len(l.types()) }

// Types returns the reflect.Type of every member of the list in order.
func Types[F, L any](l List[F, L]) []reflect.Type { return l.types() }

// Names returns the printable name of every member of the list in order.
func Names[F, L any](l List[F, L]) []string {
	var names []string
	for _, typ := range l.types() {
		names = append(names, typ.String())
	}
	return names
}

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }
