package txnkv

import (
	"github.com/pingcap/kvproto/pkg/kvrpcpb"

	"github.com/pingcap-incubator/tinykv-client/kv"
)

// Mutation helpers used when flushing a transaction's buffered writes into a
// prewrite. The operation kind decides which fields are meaningful; the
// assertion stays Assertion_None unless set explicitly.

// NewPutMutation writes value at key.
func NewPutMutation(key kv.Key, value []byte) *kvrpcpb.Mutation {
	return &kvrpcpb.Mutation{Op: kvrpcpb.Op_Put, Key: key, Value: value}
}

// NewDeleteMutation removes key.
func NewDeleteMutation(key kv.Key) *kvrpcpb.Mutation {
	return &kvrpcpb.Mutation{Op: kvrpcpb.Op_Del, Key: key}
}

// NewLockMutation locks key without writing it, so reads of key conflict
// with the transaction the way writes would.
func NewLockMutation(key kv.Key) *kvrpcpb.Mutation {
	return &kvrpcpb.Mutation{Op: kvrpcpb.Op_Lock, Key: key}
}

// NewInsertMutation writes value at key and fails the prewrite if key
// already exists.
func NewInsertMutation(key kv.Key, value []byte) *kvrpcpb.Mutation {
	return &kvrpcpb.Mutation{Op: kvrpcpb.Op_Insert, Key: key, Value: value}
}

// NewCheckNotExistsMutation asserts during prewrite that key does not exist,
// without writing anything.
func NewCheckNotExistsMutation(key kv.Key) *kvrpcpb.Mutation {
	return &kvrpcpb.Mutation{Op: kvrpcpb.Op_CheckNotExists, Key: key}
}
