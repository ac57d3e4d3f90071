// Package rawkv lowers raw mode operations into kvrpcpb requests. The raw
// API bypasses MVCC and transactions entirely: requests carry no versions,
// only keys, values and the name of the column family to operate on. The
// same rules as the transactional layer apply: functions are pure, ordered
// inputs keep their order, and a missing range upper bound is sent as the
// empty key.
package rawkv

import (
	"github.com/pingcap/kvproto/pkg/kvrpcpb"

	"github.com/pingcap-incubator/tinykv-client/kv"
)

// NewRawGetRequest reads key from cf.
func NewRawGetRequest(key kv.Key, cf string) *kvrpcpb.RawGetRequest {
	return &kvrpcpb.RawGetRequest{Key: key, Cf: cf}
}

// NewRawBatchGetRequest reads keys from cf, in the given order.
func NewRawBatchGetRequest(keys []kv.Key, cf string) *kvrpcpb.RawBatchGetRequest {
	return &kvrpcpb.RawBatchGetRequest{Keys: rawKeys(keys), Cf: cf}
}

// NewRawPutRequest writes value at key in cf.
func NewRawPutRequest(key kv.Key, value []byte, cf string) *kvrpcpb.RawPutRequest {
	return &kvrpcpb.RawPutRequest{Key: key, Value: value, Cf: cf}
}

// NewRawBatchPutRequest writes pairs into cf, in the given order.
func NewRawBatchPutRequest(pairs []kv.KvPair, cf string) *kvrpcpb.RawBatchPutRequest {
	return &kvrpcpb.RawBatchPutRequest{Pairs: kv.PairsToProto(pairs), Cf: cf}
}

// NewRawDeleteRequest removes key from cf.
func NewRawDeleteRequest(key kv.Key, cf string) *kvrpcpb.RawDeleteRequest {
	return &kvrpcpb.RawDeleteRequest{Key: key, Cf: cf}
}

// NewRawBatchDeleteRequest removes keys from cf, in the given order.
func NewRawBatchDeleteRequest(keys []kv.Key, cf string) *kvrpcpb.RawBatchDeleteRequest {
	return &kvrpcpb.RawBatchDeleteRequest{Keys: rawKeys(keys), Cf: cf}
}

// NewRawScanRequest reads up to limit keys of rng from cf. limit, keyOnly
// and reverse pass through verbatim.
func NewRawScanRequest(rng kv.BoundRange, limit uint32, keyOnly, reverse bool, cf string) *kvrpcpb.RawScanRequest {
	start, end := rangeKeys(rng)
	return &kvrpcpb.RawScanRequest{
		StartKey: start,
		EndKey:   end,
		Limit:    limit,
		KeyOnly:  keyOnly,
		Reverse:  reverse,
		Cf:       cf,
	}
}

// NewRawDeleteRangeRequest removes every key of rng from cf.
func NewRawDeleteRangeRequest(rng kv.BoundRange, cf string) *kvrpcpb.RawDeleteRangeRequest {
	start, end := rangeKeys(rng)
	return &kvrpcpb.RawDeleteRangeRequest{StartKey: start, EndKey: end, Cf: cf}
}

func rawKeys(keys []kv.Key) [][]byte {
	raw := make([][]byte, len(keys))
	for i, k := range keys {
		raw[i] = k
	}
	return raw
}

// rangeKeys substitutes the empty key for a missing upper bound, as the
// wire format cannot express an absent key field.
func rangeKeys(rng kv.BoundRange) (start, end kv.Key) {
	start, end, bounded := rng.Bounds()
	if !bounded {
		end = kv.Key{}
	}
	return start, end
}
