package boltkit

import "github.com/boltdb/bolt"

type Pair struct {
	Key   []byte
	Value []byte
}

// Pairs ranges over the key/value pairs of a bucket, skipping nested buckets.
type Pairs struct {
	tx   *bolt.Tx
	path string
}

func (Pairs) at(tx *bolt.Tx, path string) Pairs { return Pairs{tx: tx, path: path} }

func (ps Pairs) Begin() PairCursor {
	if ps.tx == nil {
		return PairCursor{}
	}
	cur := cursorAt(ps.tx, ps.path)
	if cur == nil {
		return PairCursor{}
	}
	k, v := cur.First()
	return ps.seekPair(cur, k, v)
}

func (Pairs) End() PairCursor { return PairCursor{} }

// Keys returns the path of the bucket the range belongs to.
func (ps Pairs) Keys() [][]byte { return splitPath(ps.path) }

func (ps Pairs) seekPair(cur *bolt.Cursor, k, v []byte) PairCursor {
	for ; k != nil; k, v = cur.Next() {
		if v != nil {
			return PairCursor{tx: ps.tx, path: ps.path, pair: Pair{Key: k, Value: v}, ok: true}
		}
	}
	return PairCursor{}
}

// PairCursor is a position inside a Pairs range.
// The zero PairCursor is the end of every range.
type PairCursor struct {
	tx   *bolt.Tx
	path string
	pair Pair
	ok   bool
}

func (c PairCursor) Equal(oth PairCursor) bool {
	if !c.ok || !oth.ok {
		return c.ok == oth.ok
	}
	return c.path == oth.path && string(c.pair.Key) == string(oth.pair.Key)
}

func (c PairCursor) Next() PairCursor {
	cur := cursorAt(c.tx, c.path)
	if cur == nil {
		return PairCursor{}
	}
	k, v := advance(cur, string(c.pair.Key))
	return Pairs{tx: c.tx, path: c.path}.seekPair(cur, k, v)
}

func (c PairCursor) Get() *Pair { return &c.pair }
