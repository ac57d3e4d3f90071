package kv

import (
	"bytes"
	"encoding/hex"
)

// Key is an opaque byte string identifying a record in the store. Keys are
// totally ordered by byte value.
type Key []byte

// Cmp compares k with other byte-wise, returning -1, 0 or 1.
func (k Key) Cmp(other Key) int {
	return bytes.Compare(k, other)
}

// Clone returns a copy of k backed by fresh storage.
func (k Key) Clone() Key {
	c := make(Key, len(k))
	copy(c, k)
	return c
}

// Next returns the smallest key strictly greater than k, i.e. k with a zero
// byte appended. Useful for turning an inclusive bound into an exclusive one.
func (k Key) Next() Key {
	next := make(Key, len(k), len(k)+1)
	copy(next, k)
	return append(next, 0)
}

// PrefixNext returns the smallest key greater than every key that has k as a
// prefix, so [k, k.PrefixNext()) covers exactly the keys prefixed by k. When
// every byte of k is 0xff no such key exists and PrefixNext returns nil,
// meaning the prefix's range is unbounded above.
func (k Key) PrefixNext() Key {
	buf := k.Clone()
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i]++
		if buf[i] != 0 {
			return buf[:i+1]
		}
	}
	return nil
}

// String renders the key as hex, the form used in logs and errors.
func (k Key) String() string {
	return hex.EncodeToString(k)
}
