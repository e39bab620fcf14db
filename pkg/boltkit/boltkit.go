// Package boltkit exposes a BoltDB file as nested ranges,
// so the leaves of a bucket tree can be walked with leafkit.
//
// A Buckets range holds the child buckets of a bucket,
// and a Pairs range holds its plain key/value pairs.
// Positions remember the key path of their bucket instead of a *bolt.Bucket,
// because bolt hands out a fresh bucket value on every lookup.
// Two positions opened independently at the same key compare equal.
//
// Positions and the byte slices they yield are only valid
// while the transaction they were made with is open.
package boltkit

import (
	"bytes"
	"context"
	"time"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	ErrOpen          errorkit.Error = "boltkit: unable to open database"
	ErrMissingBucket errorkit.Error = "boltkit: missing bucket"
)

// OpenTimeout is how long Open waits for the file lock.
var OpenTimeout = 3 * time.Second

// Open opens the database at path in read-only mode.
func Open(ctx context.Context, path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true, Timeout: OpenTimeout})
	if err != nil {
		logger.Error(ctx, "failed to open bolt database",
			logging.Field("path", path),
			logging.ErrField(err))
		return nil, ErrOpen.Wrap(err)
	}
	logger.Debug(ctx, "bolt database opened", logging.Field("path", path))
	return db, nil
}

// Lookup returns the range of the bucket found under the given key path.
// An empty path names the transaction root, which only holds buckets.
func Lookup[E node[E]](tx *bolt.Tx, keys ...[]byte) (E, error) {
	var (
		zero E
		path string
	)
	for i, key := range keys {
		path = appendKey(path, key)
		if cursorAt(tx, path) == nil {
			return zero, ErrMissingBucket.F("%s", bytes.Join(keys[:i+1], []byte("/")))
		}
	}
	return zero.at(tx, path), nil
}

// node is a range that can be opened at a bucket path.
type node[E any] interface {
	at(tx *bolt.Tx, path string) E
}

// cursorAt returns a bolt cursor over the bucket at path,
// or nil when no such bucket exists.
func cursorAt(tx *bolt.Tx, path string) *bolt.Cursor {
	keys := splitPath(path)
	if len(keys) == 0 {
		return tx.Cursor()
	}
	b := tx.Bucket(keys[0])
	for _, key := range keys[1:] {
		if b == nil {
			return nil
		}
		b = b.Bucket(key)
	}
	if b == nil {
		return nil
	}
	return b.Cursor()
}

// advance returns the entry that follows key in cur.
func advance(cur *bolt.Cursor, key string) (k, v []byte) {
	k, v = cur.Seek([]byte(key))
	if k != nil && string(k) == key {
		k, v = cur.Next()
	}
	return k, v
}
