package cursorkit

import "iter"

// List is a singly linked list with a tail pointer for appends.
// Its positions are Elem cursors, and its End is the nil element,
// which is also the zero Elem.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

type node[T any] struct {
	data T
	next *node[T]
}

// NewList returns a list holding vs in order.
func NewList[T any](vs ...T) List[T] {
	var l List[T]
	l.Append(vs...)
	return l
}

func (l List[T]) Begin() Elem[T] { return Elem[T]{n: l.head} }

func (l List[T]) End() Elem[T] { return Elem[T]{} }

// Len returns the number of elements in the list.
func (l List[T]) Len() int { return l.length }

func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (l *List[T]) Append(vs ...T) {
	for _, v := range vs {
		n := &node[T]{data: v}
		if l.tail == nil {
			l.head = n
		} else {
			l.tail.next = n
		}
		l.tail = n
		l.length++
	}
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (l *List[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		n := &node[T]{data: vs[i], next: l.head}
		if l.head == nil {
			l.tail = n
		}
		l.head = n
		l.length++
	}
}

// Elem is a position inside a List.
type Elem[T any] struct{ n *node[T] }

func (c Elem[T]) Equal(oth Elem[T]) bool { return c.n == oth.n }

func (c Elem[T]) Next() Elem[T] { return Elem[T]{n: c.n.next} }

func (c Elem[T]) Get() *T { return &c.n.data }
