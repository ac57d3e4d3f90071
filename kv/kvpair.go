package kv

import (
	"github.com/pingcap/kvproto/pkg/kvrpcpb"
)

// KvPair is a key together with its value.
type KvPair struct {
	Key   Key
	Value []byte
}

// ToProto converts the pair to its wire representation.
func (p KvPair) ToProto() *kvrpcpb.KvPair {
	return &kvrpcpb.KvPair{Key: p.Key, Value: p.Value}
}

// PairsToProto converts a slice of pairs, preserving order.
func PairsToProto(pairs []KvPair) []*kvrpcpb.KvPair {
	out := make([]*kvrpcpb.KvPair, len(pairs))
	for i, p := range pairs {
		out[i] = p.ToProto()
	}
	return out
}
