package boltkit

import (
	"github.com/boltdb/bolt"

	"go.llib.dev/leafkit/pkg/leafkit"
)

// Flat1 walks the pairs of a single bucket.
type Flat1 = leafkit.Leaf[PairCursor, Pair]

// Flat2 walks the pairs of every top level bucket.
type Flat2 = leafkit.Nested[BucketCursor[Pairs], Pairs, PairCursor, Flat1, Pair]

// Flat3 walks the pairs of every bucket one level below the top level buckets.
type Flat3 = leafkit.Nested[BucketCursor[Buckets[Pairs]], Buckets[Pairs], BucketCursor[Pairs], Flat2, Pair]

// Walk1 returns the begin and end iterators over the pairs of ps.
func Walk1(ps Pairs) (begin, end Flat1) {
	return leafkit.NewLeaf(ps.Begin(), ps.End()), leafkit.NewLeaf(ps.End(), ps.End())
}

// Walk2 returns the begin and end iterators over the pairs held by the top level buckets of tx.
func Walk2(tx *bolt.Tx) (begin, end Flat2) {
	return Walk2In(Root[Pairs](tx))
}

// Walk2In is Walk2 below the bucket bs belongs to.
func Walk2In(bs Buckets[Pairs]) (begin, end Flat2) {
	return leafkit.Span[Flat2](bs.Begin(), bs.End()), leafkit.End[Flat2](bs.End())
}

// Walk3 returns the begin and end iterators over the pairs of every bucket nested in a top level bucket of tx.
func Walk3(tx *bolt.Tx) (begin, end Flat3) {
	return Walk3In(Root[Buckets[Pairs]](tx))
}

func Walk3In(bs Buckets[Buckets[Pairs]]) (begin, end Flat3) {
	return leafkit.Span[Flat3](bs.Begin(), bs.End()), leafkit.End[Flat3](bs.End())
}
