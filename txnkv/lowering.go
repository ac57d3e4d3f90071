// Package txnkv lowers typed transaction operations into the kvrpcpb
// requests that drive the store's two phase commit protocol. Each function
// takes domain values (kv.Key, kv.BoundRange, oracle.Timestamp), attaches
// every timestamp to its protocol role, and delegates to the low-level
// constructors in txnkv/requests. Every function is a pure translation:
// nothing here retries, validates, logs, or performs I/O, and calling a
// function twice with equal inputs yields equal messages.
package txnkv

import (
	"github.com/pingcap/kvproto/pkg/kvrpcpb"

	"github.com/pingcap-incubator/tinykv-client/kv"
	"github.com/pingcap-incubator/tinykv-client/oracle"
	"github.com/pingcap-incubator/tinykv-client/txnkv/requests"
)

// NewGetRequest reads key from the snapshot at ts.
func NewGetRequest(key kv.Key, ts oracle.Timestamp) *kvrpcpb.GetRequest {
	return requests.NewGetRequest(key, ts.Version())
}

// NewBatchGetRequest reads keys from the snapshot at ts. The request carries
// the keys in their given order, without de-duplication.
func NewBatchGetRequest(keys []kv.Key, ts oracle.Timestamp) *kvrpcpb.BatchGetRequest {
	return requests.NewBatchGetRequest(rawKeys(keys), ts.Version())
}

// NewScanRequest reads up to limit keys of rng from the snapshot at ts.
// limit, reverse and keyOnly are carried through verbatim; their
// interpretation belongs to the server.
func NewScanRequest(rng kv.BoundRange, ts oracle.Timestamp, limit uint32, reverse, keyOnly bool) *kvrpcpb.ScanRequest {
	start, end := rangeKeys(rng)
	return requests.NewScanRequest(start, end, ts.Version(), limit, reverse, keyOnly)
}

// NewResolveLockRequest resolves all locks left by the transaction that
// started at startTS: to committed when commitTS is non-zero, to rolled back
// otherwise.
func NewResolveLockRequest(startTS, commitTS oracle.Timestamp) *kvrpcpb.ResolveLockRequest {
	return requests.NewResolveLockRequest(startTS.Version(), commitTS.Version())
}

// NewCleanupRequest clears the lock on a single key left by the transaction
// that started at startTS.
func NewCleanupRequest(key kv.Key, startTS oracle.Timestamp) *kvrpcpb.CleanupRequest {
	return requests.NewCleanupRequest(key, startTS.Version())
}

// NewPrewriteRequest proposes mutations as the first phase of an optimistic
// two phase commit. Mutations are already in wire form and pass through
// untouched; primary names the key whose lock decides the transaction's
// fate.
func NewPrewriteRequest(mutations []*kvrpcpb.Mutation, primary kv.Key, startTS oracle.Timestamp, lockTTL uint64) *kvrpcpb.PrewriteRequest {
	return requests.NewPrewriteRequest(mutations, primary, startTS.Version(), lockTTL)
}

// NewPessimisticPrewriteRequest prewrites mutations whose keys were locked
// pessimistically at forUpdateTS. The server needs forUpdateTS to detect
// writes that landed between lock acquisition and this prewrite.
func NewPessimisticPrewriteRequest(mutations []*kvrpcpb.Mutation, primary kv.Key, startTS oracle.Timestamp, lockTTL uint64, forUpdateTS oracle.Timestamp) *kvrpcpb.PrewriteRequest {
	return requests.NewPessimisticPrewriteRequest(mutations, primary, startTS.Version(), lockTTL, forUpdateTS.Version())
}

// NewCommitRequest finalizes the transaction that started at startTS,
// committing keys at commitTS. Key order is preserved.
func NewCommitRequest(keys []kv.Key, startTS, commitTS oracle.Timestamp) *kvrpcpb.CommitRequest {
	return requests.NewCommitRequest(rawKeys(keys), startTS.Version(), commitTS.Version())
}

// NewBatchRollbackRequest aborts the transaction that started at startTS.
func NewBatchRollbackRequest(keys []kv.Key, startTS oracle.Timestamp) *kvrpcpb.BatchRollbackRequest {
	return requests.NewBatchRollbackRequest(rawKeys(keys), startTS.Version())
}

// NewPessimisticRollbackRequest releases the pessimistic locks taken on keys
// at forUpdateTS, without finalizing the transaction. A transaction can lock
// at several for-update versions across retries, so the version to release
// must be named explicitly.
func NewPessimisticRollbackRequest(keys []kv.Key, startTS, forUpdateTS oracle.Timestamp) *kvrpcpb.PessimisticRollbackRequest {
	return requests.NewPessimisticRollbackRequest(rawKeys(keys), startTS.Version(), forUpdateTS.Version())
}

// NewScanLockRequest lists up to limit locks with a version at or below the
// GC safepoint, starting from startKey.
func NewScanLockRequest(startKey kv.Key, safepoint oracle.Timestamp, limit uint32) *kvrpcpb.ScanLockRequest {
	return requests.NewScanLockRequest(startKey, safepoint.Version(), limit)
}

// NewTxnHeartBeatRequest extends the primary lock's TTL to signal that the
// transaction started at startTS is still alive. Only the primary key is
// sent; secondary locks defer to the primary.
func NewTxnHeartBeatRequest(startTS oracle.Timestamp, primary kv.Key, ttl uint64) *kvrpcpb.TxnHeartBeatRequest {
	return requests.NewTxnHeartBeatRequest(startTS.Version(), primary, ttl)
}

// NewDeleteRangeRequest deletes every key in rng. This is a bulk,
// non-transactional operation with no version attached.
func NewDeleteRangeRequest(rng kv.BoundRange) *kvrpcpb.DeleteRangeRequest {
	start, end := rangeKeys(rng)
	return requests.NewDeleteRangeRequest(start, end)
}

func rawKeys(keys []kv.Key) [][]byte {
	raw := make([][]byte, len(keys))
	for i, k := range keys {
		raw[i] = k
	}
	return raw
}

// rangeKeys splits rng for the wire, substituting the empty key for a
// missing upper bound. The wire format has no "absent" encoding for key
// fields, only the empty byte string meaning "unbounded".
func rangeKeys(rng kv.BoundRange) (start, end kv.Key) {
	start, end, bounded := rng.Bounds()
	if !bounded {
		end = kv.Key{}
	}
	return start, end
}
