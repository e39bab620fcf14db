package zipkit_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/golang/mock/gomock"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/leafkit/pkg/cursorkit"
	"go.llib.dev/leafkit/pkg/iterkit"
	"go.llib.dev/leafkit/pkg/iterkit/iterkitcontract"
	"go.llib.dev/leafkit/pkg/leafkit"
	"go.llib.dev/leafkit/pkg/zipkit"
)

type point struct{ X, Y int }

func ExampleFromRanges2() {
	names := cursorkit.Slice[string]{"foo", "bar", "baz"}
	ages := cursorkit.NewList(12, 34, 56)
	begin, end := zipkit.FromRanges2(names, ages)
	for it := begin; !it.Equal(end); it.Inc() {
		name, age := it.Value().Values()
		_, _ = name, age
	}
}

func TestZip3(t *testing.T) {
	s := testcase.NewSpec(t)

	length := let.IntB(s, 0, 7)
	ints := let.Var(s, func(t *testcase.T) cursorkit.Slice[int] {
		return random.Slice(length.Get(t), func() int { return t.Random.Int() })
	})
	floats := let.Var(s, func(t *testcase.T) cursorkit.List[float64] {
		return cursorkit.NewList(random.Slice(length.Get(t), func() float64 { return t.Random.Float64() })...)
	})
	points := let.Var(s, func(t *testcase.T) cursorkit.Slice[point] {
		return random.Slice(length.Get(t), func() point {
			return point{X: t.Random.Int(), Y: t.Random.Int()}
		})
	})

	type Z = zipkit.Zip3[cursorkit.Index[int], int, cursorkit.Elem[float64], float64, cursorkit.Index[point], point]

	span := func(t *testcase.T) (Z, Z) {
		return zipkit.FromRanges3(ints.Get(t), floats.Get(t), points.Get(t))
	}

	s.Test("distance equals the common length", func(t *testcase.T) {
		begin, end := span(t)
		assert.Equal(t, length.Get(t), iterkit.Distance(begin, end))
	})

	s.Test("dereferencing yields the i-th element of every range", func(t *testcase.T) {
		begin, end := span(t)
		fs := floats.Get(t).Values()
		var expFloats []float64
		for f := range fs {
			expFloats = append(expFloats, f)
		}

		var i int
		for it := begin; !it.Equal(end); it.Inc() {
			a, b, c := it.Value().Values()
			assert.Equal(t, ints.Get(t)[i], a)
			assert.Equal(t, expFloats[i], b)
			assert.Equal(t, points.Get(t)[i], c)
			i++
		}
		assert.Equal(t, length.Get(t), i)
	})

	s.Test("the tuple references the elements in place", func(t *testcase.T) {
		length.Set(t, 3)
		begin, _ := span(t)
		tup := begin.Get()
		*tup.V1 = 42
		tup.V3.X = 24
		assert.Equal(t, 42, ints.Get(t)[0])
		assert.Equal(t, 24, points.Get(t)[0].X)
	})

	s.When("every range is empty", func(s *testcase.Spec) {
		length.LetValue(s, 0)

		s.Then("begin equals end", func(t *testcase.T) {
			begin, end := span(t)
			assert.True(t, begin.Equal(end))
			assert.Equal(t, 0, iterkit.Distance(begin, end))
		})
	})

	s.Test("PostInc returns the position before the advance", func(t *testcase.T) {
		length.Set(t, 3)
		begin, _ := span(t)
		it := begin
		prev := it.PostInc()
		assert.True(t, prev.Equal(begin))
		assert.False(t, it.Equal(begin))
		assert.True(t, it.Equal(begin.Next()))
		assert.Equal(t, ints.Get(t)[1], *it.Get().V1)
	})

	s.Test("Inc returns the receiver", func(t *testcase.T) {
		length.Set(t, 2)
		begin, _ := span(t)
		it := begin
		assert.True(t, it.Inc() == &it)
		assert.True(t, it.Equal(begin.Next()))
	})

	s.Test("Next leaves the original untouched", func(t *testcase.T) {
		length.Set(t, 2)
		begin, _ := span(t)
		next := begin.Next()
		assert.False(t, next.Equal(begin))
		a, _, _ := begin.Cursors()
		assert.Equal(t, 0, a.Offset())
	})
}

func TestZip1(t *testing.T) {
	vs := cursorkit.Slice[int]{1, 2, 3, 4, 5}
	begin, end := zipkit.FromRanges1(vs)
	assert.Equal(t, 5, iterkit.Distance(begin, end))

	var got []int
	for tup := range iterkit.Seq(begin, end) {
		got = append(got, tup.Values())
	}
	assert.Equal(t, []int(vs), got)
}

func TestZip3_unequalLengths(t *testing.T) {
	// iteration stops at the first component that reaches its end
	a := cursorkit.Slice[int]{1}
	b := cursorkit.Slice[int]{1, 2}
	c := cursorkit.Slice[int]{1, 2, 3}

	begin, end := zipkit.FromRanges3(a, b, c)
	assert.Equal(t, 1, iterkit.Distance(begin, end))

	begin, end = zipkit.FromRanges3(c, b, a)
	assert.Equal(t, 1, iterkit.Distance(begin, end))

	begin, end = zipkit.FromRanges3(c, b, c)
	assert.Equal(t, 2, iterkit.Distance(begin, end))

	it := begin.Next().Next()
	x, y, z := it.Cursors()
	assert.True(t, y.Equal(b.End()), "the shorter component reached its end")
	assert.False(t, x.Equal(c.End()))
	assert.False(t, z.Equal(c.End()))
}

func TestZip4(t *testing.T) {
	ids := random.Slice(4, func() string { return uuid.NewV4().String() })
	keys := cursorkit.Slice[string](ids)
	counts := cursorkit.CountRange(10, 14)
	flags := cursorkit.NewList(true, false, true, false)
	bytes := cursorkit.Slice[byte]("abcd")

	begin, end := zipkit.FromRanges4(keys, counts, flags, bytes)
	assert.Equal(t, 4, iterkit.Distance(begin, end))

	var i int
	for it := begin; !it.Equal(end); it = it.Next() {
		id, n, flag, b := it.Value().Values()
		assert.Equal(t, ids[i], id)
		assert.Equal(t, 10+i, n)
		assert.Equal(t, i%2 == 0, flag)
		assert.Equal(t, "abcd"[i], b)
		i++
	}
	assert.Equal(t, 4, i)
}

func TestZip2_contract(t *testing.T) {
	type Z = zipkit.Zip2[cursorkit.Index[string], string, cursorkit.Elem[int], int]
	type V = zipkit.Tuple2[string, int]

	iterkitcontract.Forward(func(tb testing.TB) iterkitcontract.ForwardSubject[Z, V] {
		n := randomdata.Number(1, 6)
		ids := cursorkit.Slice[string](random.Slice(n, func() string { return uuid.NewV4().String() }))
		nums := cursorkit.NewList(random.Slice(n, func() int { return randomdata.Number(1000) })...)

		var exp []V
		for it := nums.Begin(); !it.Equal(nums.End()); it = it.Next() {
			exp = append(exp, V{V1: &ids[len(exp)], V2: it.Get()})
		}

		begin, end := zipkit.FromRanges2(ids, nums)
		return iterkitcontract.ForwardSubject[Z, V]{
			Begin:  begin,
			End:    end,
			Values: exp,
		}
	}).Test(t)
}

func TestZip2_leafIterators(t *testing.T) {
	grid := cursorkit.Slice[cursorkit.Slice[int]]{{}, {1, 2}, {}, {3}, {4, 5, 6}}
	labels := cursorkit.Slice[string]{"a", "b", "c", "d", "e", "f"}

	leavesBegin, leavesEnd := leafkit.FromSlices2(grid)
	begin := zipkit.New2(leavesBegin, labels.Begin())
	end := zipkit.New2(leavesEnd, labels.End())

	var got []string
	for it := begin; !it.Equal(end); it.Inc() {
		n, label := it.Value().Values()
		got = append(got, label+string(rune('0'+n)))
	}
	assert.Equal(t, []string{"a1", "b2", "c3", "d4", "e5", "f6"}, got)
}

func TestZip3_advanceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := NewMockStepRecorder(ctrl)
	gomock.InOrder(
		rec.EXPECT().Step("first", 0),
		rec.EXPECT().Step("second", 0),
		rec.EXPECT().Step("third", 0),
		rec.EXPECT().Step("first", 1),
		rec.EXPECT().Step("second", 1),
		rec.EXPECT().Step("third", 1),
	)

	vs := cursorkit.Slice[int]{1, 2}
	b1, e1 := probeRange("first", rec, vs)
	b2, e2 := probeRange("second", rec, vs)
	b3, e3 := probeRange("third", rec, vs)

	begin := zipkit.New3(b1, b2, b3)
	end := zipkit.New3(e1, e2, e3)

	var n int
	for it := begin; !it.Equal(end); it.Inc() {
		n++
	}
	assert.Equal(t, 2, n)
}
