package txnkv

import (
	"github.com/pingcap/kvproto/pkg/kvrpcpb"

	"github.com/pingcap-incubator/tinykv-client/kv"
	"github.com/pingcap-incubator/tinykv-client/oracle"
	"github.com/pingcap-incubator/tinykv-client/txnkv/requests"
)

// A PessimisticLock is something a pessimistic lock request can lock: a key,
// optionally with an assertion about the key's existence. Only two shapes
// are legitimate, LockKey and LockKeyWithAssertion; the interface methods
// are unexported so the set stays closed. Call sites that never assert can
// pass bare keys instead of wrapping every key in a pair.
type PessimisticLock interface {
	lockKey() kv.Key
	lockAssertion() kvrpcpb.Assertion
}

// LockKey is a bare key to lock. Its assertion is Assertion_None.
type LockKey kv.Key

func (k LockKey) lockKey() kv.Key { return kv.Key(k) }

func (k LockKey) lockAssertion() kvrpcpb.Assertion { return kvrpcpb.Assertion_None }

// LockKeyWithAssertion locks a key and asserts whether it currently exists.
type LockKeyWithAssertion struct {
	Key       kv.Key
	Assertion kvrpcpb.Assertion
}

func (l LockKeyWithAssertion) lockKey() kv.Key { return l.Key }

func (l LockKeyWithAssertion) lockAssertion() kvrpcpb.Assertion { return l.Assertion }

// NewPessimisticLockRequest locks every key in locks at forUpdateTS, ahead
// of prewrite, for the transaction that started at startTS. One
// pessimistic-lock mutation is built per entry, in the given order, carrying
// the entry's key and assertion. needValue asks the server to return the
// current value of each locked key, saving a read round trip.
func NewPessimisticLockRequest(locks []PessimisticLock, primary kv.Key, startTS oracle.Timestamp, lockTTL uint64, forUpdateTS oracle.Timestamp, needValue bool) *kvrpcpb.PessimisticLockRequest {
	mutations := make([]*kvrpcpb.Mutation, len(locks))
	for i, l := range locks {
		mutations[i] = &kvrpcpb.Mutation{
			Op:        kvrpcpb.Op_PessimisticLock,
			Key:       l.lockKey(),
			Assertion: l.lockAssertion(),
		}
	}
	return requests.NewPessimisticLockRequest(mutations, primary, startTS.Version(), lockTTL, forUpdateTS.Version(), needValue)
}
