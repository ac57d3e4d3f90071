package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsBounded(t *testing.T) {
	start, end, bounded := NewBoundRange(Key("a"), Key("z")).Bounds()
	assert.True(t, bounded)
	assert.Equal(t, Key("a"), start)
	assert.Equal(t, Key("z"), end)
}

func TestBoundsUnbounded(t *testing.T) {
	start, end, bounded := RangeFrom(Key("a")).Bounds()
	assert.False(t, bounded)
	assert.Equal(t, Key("a"), start)
	assert.Nil(t, end)
}

func TestBoundsEmptyUpperIsBounded(t *testing.T) {
	// An empty but present upper bound is a degenerate empty range, not an
	// unbounded one.
	_, end, bounded := NewBoundRange(Key("a"), Key{}).Bounds()
	assert.True(t, bounded)
	assert.Equal(t, Key{}, end)
}

func TestPrefixRange(t *testing.T) {
	r := PrefixRange(Key{1, 2})
	assert.Equal(t, Key{1, 2}, r.From)
	assert.Equal(t, Key{1, 3}, r.To)

	r = PrefixRange(Key{1, 0xff})
	assert.Equal(t, Key{2}, r.To)

	// An all-0xff prefix has no upper bound.
	_, _, bounded := PrefixRange(Key{0xff, 0xff}).Bounds()
	assert.False(t, bounded)
}

func TestKvPairToProto(t *testing.T) {
	p := KvPair{Key: Key("k"), Value: []byte("v")}.ToProto()
	assert.Equal(t, []byte("k"), p.Key)
	assert.Equal(t, []byte("v"), p.Value)

	pairs := PairsToProto([]KvPair{
		{Key: Key("b"), Value: []byte("1")},
		{Key: Key("a"), Value: []byte("2")},
	})
	assert.Equal(t, 2, len(pairs))
	assert.Equal(t, []byte("b"), pairs[0].Key)
	assert.Equal(t, []byte("a"), pairs[1].Key)
}
