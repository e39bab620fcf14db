package cursorkit

// Count is a cursor over consecutive integers.
// It needs no container behind it, the position is the value itself.
type Count int

func (c Count) Equal(oth Count) bool { return c == oth }

func (c Count) Next() Count { return c + 1 }

func (c Count) Get() *int {
	v := int(c)
	return &v
}

// Counting is the half-open integer range [From, To).
type Counting struct{ From, To int }

// CountRange returns the integers from begin up to, but not including, end.
func CountRange(begin, end int) Counting {
	if end < begin {
		end = begin
	}
	return Counting{From: begin, To: end}
}

func (r Counting) Begin() Count { return Count(r.From) }

func (r Counting) End() Count { return Count(r.To) }
