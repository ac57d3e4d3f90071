// Package requests holds the low-level constructors for transactional
// kvrpcpb messages. Arguments are already wire-shaped: raw key bytes,
// composed version numbers, primitive flags. Which version number lands in
// which protocol field is pinned here and nowhere else, so a transposed
// timestamp role is a bug in exactly one place.
package requests

import (
	"github.com/pingcap/kvproto/pkg/kvrpcpb"
)

// NewGetRequest reads one key at a version.
func NewGetRequest(key []byte, version uint64) *kvrpcpb.GetRequest {
	return &kvrpcpb.GetRequest{
		Key:     key,
		Version: version,
	}
}

// NewBatchGetRequest reads several keys at one version. Keys are sent in the
// order given.
func NewBatchGetRequest(keys [][]byte, version uint64) *kvrpcpb.BatchGetRequest {
	return &kvrpcpb.BatchGetRequest{
		Keys:    keys,
		Version: version,
	}
}

// NewScanRequest reads up to limit keys in [startKey, endKey) at a version.
// An empty endKey means the scan has no upper bound.
func NewScanRequest(startKey, endKey []byte, version uint64, limit uint32, reverse, keyOnly bool) *kvrpcpb.ScanRequest {
	return &kvrpcpb.ScanRequest{
		StartKey: startKey,
		EndKey:   endKey,
		Version:  version,
		Limit:    limit,
		Reverse:  reverse,
		KeyOnly:  keyOnly,
	}
}

// NewResolveLockRequest resolves the locks left by the transaction that
// started at startVersion. A zero commitVersion rolls the transaction back,
// a non-zero one commits it at that version.
func NewResolveLockRequest(startVersion, commitVersion uint64) *kvrpcpb.ResolveLockRequest {
	return &kvrpcpb.ResolveLockRequest{
		StartVersion:  startVersion,
		CommitVersion: commitVersion,
	}
}

// NewCleanupRequest clears a single lock left at startVersion.
func NewCleanupRequest(key []byte, startVersion uint64) *kvrpcpb.CleanupRequest {
	return &kvrpcpb.CleanupRequest{
		Key:          key,
		StartVersion: startVersion,
	}
}

// NewPrewriteRequest proposes a set of mutations as the first phase of an
// optimistic two phase commit.
func NewPrewriteRequest(mutations []*kvrpcpb.Mutation, primaryLock []byte, startVersion, lockTTL uint64) *kvrpcpb.PrewriteRequest {
	return &kvrpcpb.PrewriteRequest{
		Mutations:    mutations,
		PrimaryLock:  primaryLock,
		StartVersion: startVersion,
		LockTtl:      lockTTL,
	}
}

// NewPessimisticPrewriteRequest is a prewrite for keys already covered by
// pessimistic locks taken at forUpdateTS. Every mutation is flagged as
// pessimistic so the server checks the lock instead of the write column.
func NewPessimisticPrewriteRequest(mutations []*kvrpcpb.Mutation, primaryLock []byte, startVersion, lockTTL, forUpdateTS uint64) *kvrpcpb.PrewriteRequest {
	req := NewPrewriteRequest(mutations, primaryLock, startVersion, lockTTL)
	req.ForUpdateTs = forUpdateTS
	req.IsPessimisticLock = make([]bool, len(mutations))
	for i := range req.IsPessimisticLock {
		req.IsPessimisticLock[i] = true
	}
	return req
}

// NewCommitRequest finalizes a prewritten transaction at commitVersion.
func NewCommitRequest(keys [][]byte, startVersion, commitVersion uint64) *kvrpcpb.CommitRequest {
	return &kvrpcpb.CommitRequest{
		Keys:          keys,
		StartVersion:  startVersion,
		CommitVersion: commitVersion,
	}
}

// NewBatchRollbackRequest aborts a prewritten transaction.
func NewBatchRollbackRequest(keys [][]byte, startVersion uint64) *kvrpcpb.BatchRollbackRequest {
	return &kvrpcpb.BatchRollbackRequest{
		Keys:         keys,
		StartVersion: startVersion,
	}
}

// NewPessimisticRollbackRequest releases pessimistic locks taken at
// forUpdateTS without finalizing the transaction.
func NewPessimisticRollbackRequest(keys [][]byte, startVersion, forUpdateTS uint64) *kvrpcpb.PessimisticRollbackRequest {
	return &kvrpcpb.PessimisticRollbackRequest{
		Keys:         keys,
		StartVersion: startVersion,
		ForUpdateTs:  forUpdateTS,
	}
}

// NewPessimisticLockRequest locks the mutated keys ahead of prewrite. When
// returnValues is set the server replies with the current value of each
// locked key.
func NewPessimisticLockRequest(mutations []*kvrpcpb.Mutation, primaryLock []byte, startVersion, lockTTL, forUpdateTS uint64, returnValues bool) *kvrpcpb.PessimisticLockRequest {
	return &kvrpcpb.PessimisticLockRequest{
		Mutations:    mutations,
		PrimaryLock:  primaryLock,
		StartVersion: startVersion,
		LockTtl:      lockTTL,
		ForUpdateTs:  forUpdateTS,
		ReturnValues: returnValues,
	}
}

// NewScanLockRequest lists up to limit locks with a version at or below
// maxVersion, starting from startKey.
func NewScanLockRequest(startKey []byte, maxVersion uint64, limit uint32) *kvrpcpb.ScanLockRequest {
	return &kvrpcpb.ScanLockRequest{
		StartKey:   startKey,
		MaxVersion: maxVersion,
		Limit:      limit,
	}
}

// NewTxnHeartBeatRequest advises a new TTL for the primary lock of the
// transaction that started at startVersion.
func NewTxnHeartBeatRequest(startVersion uint64, primaryLock []byte, adviseTTL uint64) *kvrpcpb.TxnHeartBeatRequest {
	return &kvrpcpb.TxnHeartBeatRequest{
		StartVersion:  startVersion,
		PrimaryLock:   primaryLock,
		AdviseLockTtl: adviseTTL,
	}
}

// NewDeleteRangeRequest deletes every key in [startKey, endKey), ignoring
// MVCC versions. An empty endKey means no upper bound.
func NewDeleteRangeRequest(startKey, endKey []byte) *kvrpcpb.DeleteRangeRequest {
	return &kvrpcpb.DeleteRangeRequest{
		StartKey: startKey,
		EndKey:   endKey,
	}
}
