package rawkv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pingcap-incubator/tinykv-client/kv"
)

const cf = "default"

func TestRawGetRequest(t *testing.T) {
	req := NewRawGetRequest(kv.Key("k1"), cf)
	assert.Equal(t, []byte("k1"), req.Key)
	assert.Equal(t, cf, req.Cf)
}

func TestRawBatchGetPreservesOrder(t *testing.T) {
	req := NewRawBatchGetRequest([]kv.Key{kv.Key("b"), kv.Key("a"), kv.Key("b")}, cf)
	assert.Equal(t, [][]byte{[]byte("b"), []byte("a"), []byte("b")}, req.Keys)
	assert.Equal(t, cf, req.Cf)
}

func TestRawPutRequest(t *testing.T) {
	req := NewRawPutRequest(kv.Key("k1"), []byte("v1"), "write")
	assert.Equal(t, []byte("k1"), req.Key)
	assert.Equal(t, []byte("v1"), req.Value)
	assert.Equal(t, "write", req.Cf)
}

func TestRawBatchPutPreservesOrder(t *testing.T) {
	pairs := []kv.KvPair{
		{Key: kv.Key("z"), Value: []byte("1")},
		{Key: kv.Key("a"), Value: []byte("2")},
	}
	req := NewRawBatchPutRequest(pairs, cf)
	assert.Equal(t, 2, len(req.Pairs))
	assert.Equal(t, []byte("z"), req.Pairs[0].Key)
	assert.Equal(t, []byte("1"), req.Pairs[0].Value)
	assert.Equal(t, []byte("a"), req.Pairs[1].Key)
}

func TestRawDeleteRequest(t *testing.T) {
	req := NewRawDeleteRequest(kv.Key("k1"), cf)
	assert.Equal(t, []byte("k1"), req.Key)
	assert.Equal(t, cf, req.Cf)

	batch := NewRawBatchDeleteRequest([]kv.Key{kv.Key("k2"), kv.Key("k1")}, cf)
	assert.Equal(t, [][]byte{[]byte("k2"), []byte("k1")}, batch.Keys)
}

func TestRawScanRequest(t *testing.T) {
	req := NewRawScanRequest(kv.NewBoundRange(kv.Key("a"), kv.Key("z")), 64, true, true, cf)
	assert.Equal(t, []byte("a"), req.StartKey)
	assert.Equal(t, []byte("z"), req.EndKey)
	assert.Equal(t, uint32(64), req.Limit)
	assert.True(t, req.KeyOnly)
	assert.True(t, req.Reverse)
	assert.Equal(t, cf, req.Cf)
}

func TestRawScanUnboundedRangeSendsEmptyEndKey(t *testing.T) {
	req := NewRawScanRequest(kv.RangeFrom(kv.Key("a")), 64, false, false, cf)
	assert.NotNil(t, req.EndKey)
	assert.Equal(t, []byte{}, req.EndKey)
}

func TestRawDeleteRangeRequest(t *testing.T) {
	req := NewRawDeleteRangeRequest(kv.PrefixRange(kv.Key{1, 2}), cf)
	assert.Equal(t, []byte{1, 2}, req.StartKey)
	assert.Equal(t, []byte{1, 3}, req.EndKey)
	assert.Equal(t, cf, req.Cf)

	req = NewRawDeleteRangeRequest(kv.RangeFrom(kv.Key("a")), cf)
	assert.Equal(t, []byte{}, req.EndKey)
}
