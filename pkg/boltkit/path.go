package boltkit

import "encoding/binary"

// A bucket path is the concatenation of its keys, each prefixed with its length as a uvarint.
// Keys may hold any byte, so no separator would be safe.

func appendKey(path string, key []byte) string {
	buf := binary.AppendUvarint([]byte(path), uint64(len(key)))
	return string(append(buf, key...))
}

func splitPath(path string) [][]byte {
	var (
		keys [][]byte
		raw  = []byte(path)
	)
	for 0 < len(raw) {
		n, w := binary.Uvarint(raw)
		if w <= 0 || uint64(len(raw)-w) < n {
			panic("boltkit: corrupt bucket path")
		}
		raw = raw[w:]
		keys = append(keys, raw[:n:n])
		raw = raw[n:]
	}
	return keys
}
