package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionComposition(t *testing.T) {
	assert.Equal(t, uint64(0), NewTimestamp(0, 0).Version())
	assert.Equal(t, uint64(1<<18), NewTimestamp(1, 0).Version())
	assert.Equal(t, uint64(1<<18+7), NewTimestamp(1, 7).Version())
	assert.Equal(t, uint64(1596193094910)<<18+42, NewTimestamp(1596193094910, 42).Version())
}

func TestFromVersion(t *testing.T) {
	ts := FromVersion(1<<18 + 7)
	assert.Equal(t, int64(1), ts.Physical)
	assert.Equal(t, int64(7), ts.Logical)
}

func TestVersionRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 1 << 18, 1<<18 - 1, 424242424242} {
		assert.Equal(t, v, FromVersion(v).Version())
	}
}
