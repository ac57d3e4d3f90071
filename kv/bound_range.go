package kv

// BoundRange is a half-open key interval [From, To). A nil To means the
// range is unbounded above. The wire format has no way to express a missing
// field, only an empty byte string meaning "no bound", so consumers must
// encode an unbounded To as the empty key (see Bounds).
type BoundRange struct {
	From Key
	To   Key
}

// NewBoundRange builds the range [from, to).
func NewBoundRange(from, to Key) BoundRange {
	return BoundRange{From: from, To: to}
}

// RangeFrom builds the unbounded range [from, +inf).
func RangeFrom(from Key) BoundRange {
	return BoundRange{From: from}
}

// PrefixRange builds the range covering exactly the keys that have prefix as
// a prefix. If the prefix is all 0xff bytes the range is unbounded above.
func PrefixRange(prefix Key) BoundRange {
	return BoundRange{From: prefix.Clone(), To: prefix.PrefixNext()}
}

// Bounds splits the range into its start and end keys. bounded reports
// whether an upper bound exists; when it is false callers must send the
// empty key as the end key, the protocol's encoding for "unbounded".
func (r BoundRange) Bounds() (start, end Key, bounded bool) {
	return r.From, r.To, r.To != nil
}
