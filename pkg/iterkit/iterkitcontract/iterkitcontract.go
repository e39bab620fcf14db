package iterkitcontract

import (
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/leafkit/pkg/cursorkit"
	"go.llib.dev/leafkit/pkg/iterkit"
)

// ForwardSubject is a begin/end pair together with the values the range is expected to yield.
type ForwardSubject[C any, V any] struct {
	Begin C
	End   C
	// Values are the expected elements of the range in traversal order.
	Values []V
	// ZeroIsEnd marks position types whose zero value denotes the end of any range,
	// such as the leafkit iterators' terminal sentinel.
	ZeroIsEnd bool
}

// Forward checks the forward iterator contract that single-pass algorithms rely on:
// equality is reflexive and symmetric, increments are consistent,
// and dereferencing a position is stable.
func Forward[C cursorkit.Cursor[C, V], V any](mk contract.Make[ForwardSubject[C, V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) ForwardSubject[C, V] {
		return mk(t)
	})

	positions := func(t *testcase.T) []C {
		var cs []C
		for c := subject.Get(t).Begin; !c.Equal(subject.Get(t).End); c = c.Next() {
			cs = append(cs, c)
		}
		return cs
	}

	s.Test("distance from begin to end equals the number of expected values", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Values), iterkit.Distance(sub.Begin, sub.End))
	})

	s.Test("values are visited in the expected order", func(t *testcase.T) {
		sub := subject.Get(t)
		got := iterkit.Collect(sub.Begin, sub.End)
		if len(sub.Values) == 0 {
			assert.Empty(t, got)
			return
		}
		assert.Equal(t, sub.Values, got)
	})

	s.Test("equality is reflexive", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, sub.End.Equal(sub.End))
		for _, c := range positions(t) {
			assert.True(t, c.Equal(c))
		}
	})

	s.Test("equality is symmetric", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, sub.Begin.Equal(sub.End), sub.End.Equal(sub.Begin))
		cs := positions(t)
		for i, a := range cs {
			assert.False(t, a.Equal(sub.End))
			assert.False(t, sub.End.Equal(a))
			for j, b := range cs {
				assert.Equal(t, i == j, a.Equal(b))
				assert.Equal(t, a.Equal(b), b.Equal(a))
			}
		}
	})

	s.Test("advancing a copy leaves the original untouched", func(t *testcase.T) {
		for _, c := range positions(t) {
			cpy := c
			_ = cpy.Next()
			assert.True(t, cpy.Equal(c))
			assert.True(t, c.Next().Equal(cpy.Next()))
		}
	})

	s.Test("dereferencing a position twice yields the same element", func(t *testcase.T) {
		for _, c := range positions(t) {
			assert.Equal(t, *c.Get(), *c.Get())
		}
	})

	s.Test("pre and post increment are consistent", func(t *testcase.T) {
		for _, c := range positions(t) {
			pre := c
			post := c
			inc, ok := any(&pre).(interface{ Inc() *C })
			if !ok {
				t.Skip("position type has no in place increment")
			}
			postInc := any(&post).(interface{ PostInc() C })
			inc.Inc()
			prev := postInc.PostInc()
			assert.True(t, prev.Equal(c))
			assert.True(t, pre.Equal(post))
			assert.True(t, pre.Equal(c.Next()))
		}
	})

	s.Test("the zero position equals end when the type says so", func(t *testcase.T) {
		sub := subject.Get(t)
		if !sub.ZeroIsEnd {
			t.Skip("zero position is not an end position for this type")
		}
		var zero C
		assert.True(t, zero.Equal(sub.End))
		assert.True(t, sub.End.Equal(zero))
		assert.True(t, zero.Equal(zero))
		c := sub.Begin
		for !c.Equal(sub.End) {
			c = c.Next()
		}
		assert.True(t, c.Equal(zero))
		assert.True(t, zero.Equal(c))
	})

	return s.AsSuite("forward iterator")
}

// Run is a shorthand for running the Forward contract with a fixed subject.
func Run[C cursorkit.Cursor[C, V], V any](t *testing.T, sub ForwardSubject[C, V]) {
	Forward(func(testing.TB) ForwardSubject[C, V] { return sub }).Test(t)
}
