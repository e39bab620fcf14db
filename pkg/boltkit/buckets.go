package boltkit

import "github.com/boltdb/bolt"

// Buckets ranges over the child buckets of a bucket.
// Each child is opened as E, which is either Pairs or another Buckets.
type Buckets[E node[E]] struct {
	tx   *bolt.Tx
	path string
}

// Root returns the buckets at the top level of the transaction.
func Root[E node[E]](tx *bolt.Tx) Buckets[E] {
	return Buckets[E]{tx: tx}
}

func (Buckets[E]) at(tx *bolt.Tx, path string) Buckets[E] {
	return Buckets[E]{tx: tx, path: path}
}

func (bs Buckets[E]) Begin() BucketCursor[E] {
	if bs.tx == nil {
		return BucketCursor[E]{}
	}
	cur := cursorAt(bs.tx, bs.path)
	if cur == nil {
		return BucketCursor[E]{}
	}
	k, v := cur.First()
	return bs.seekBucket(cur, k, v)
}

func (Buckets[E]) End() BucketCursor[E] { return BucketCursor[E]{} }

// Keys returns the path of the bucket the range belongs to.
func (bs Buckets[E]) Keys() [][]byte { return splitPath(bs.path) }

func (bs Buckets[E]) seekBucket(cur *bolt.Cursor, k, v []byte) BucketCursor[E] {
	for ; k != nil; k, v = cur.Next() {
		if v == nil {
			return BucketCursor[E]{tx: bs.tx, path: bs.path, key: string(k), ok: true}
		}
	}
	return BucketCursor[E]{}
}

// BucketCursor is a position inside a Buckets range.
// The zero BucketCursor is the end of every range.
type BucketCursor[E node[E]] struct {
	tx   *bolt.Tx
	path string
	key  string
	ok   bool
}

func (c BucketCursor[E]) Equal(oth BucketCursor[E]) bool {
	if !c.ok || !oth.ok {
		return c.ok == oth.ok
	}
	return c.path == oth.path && c.key == oth.key
}

func (c BucketCursor[E]) Next() BucketCursor[E] {
	cur := cursorAt(c.tx, c.path)
	if cur == nil {
		return BucketCursor[E]{}
	}
	k, v := advance(cur, c.key)
	return Buckets[E]{tx: c.tx, path: c.path}.seekBucket(cur, k, v)
}

// Get opens the child bucket under the cursor.
func (c BucketCursor[E]) Get() *E {
	var e E
	e = e.at(c.tx, appendKey(c.path, []byte(c.key)))
	return &e
}

// Key returns the name of the child bucket under the cursor.
func (c BucketCursor[E]) Key() []byte { return []byte(c.key) }
