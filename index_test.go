package genni

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collidingRecords produce keys 6,7 (first), 5,7 (second) and -4,-4 (third)
// over yl in [1,2].
var collidingRecords = []RightRecord{
	{XR: 1, YR: 10, K: 5},
	{XR: 2, YR: 20, K: 3},
	{XR: 0, YR: 30, K: -4},
}

func TestBuildIndexKeepsCollisions(t *testing.T) {
	for _, shards := range []int{1, 3, 8} {
		idx, err := BuildIndex(context.Background(), collidingRecords, Range{1, 2}, shards)
		require.NoError(t, err)

		assert.Equal(t, 4, idx.Keys(), "shards=%d", shards)
		assert.Equal(t, 6, idx.Entries(), "shards=%d", shards)
		assert.ElementsMatch(t, []Entry{{XR: 1, YR: 10, YL: 2}, {XR: 2, YR: 20, YL: 2}}, idx.Lookup(7))
		assert.ElementsMatch(t, []Entry{{XR: 0, YR: 30, YL: 1}, {XR: 0, YR: 30, YL: 2}}, idx.Lookup(-4))
		assert.Equal(t, []Entry{{XR: 2, YR: 20, YL: 1}}, idx.Lookup(5))
		assert.Nil(t, idx.Lookup(8))
		assert.Equal(t, []int64{10, 20, 30}, idx.Probes())
	}
}

func TestBuildIndexEmpty(t *testing.T) {
	idx, err := BuildIndex(context.Background(), nil, Range{1000, 9999}, 4)
	require.NoError(t, err)
	assert.Zero(t, idx.Keys())
	assert.Zero(t, idx.Entries())
	assert.Empty(t, idx.Probes())
	assert.Nil(t, idx.Lookup(0))
}

func TestBuildIndexCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuildIndex(ctx, collidingRecords, Range{1, 2}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProbeList(t *testing.T) {
	recs := []RightRecord{{YR: 5}, {YR: 3}, {YR: 5}, {YR: 1}, {YR: 3}}
	assert.Equal(t, []int64{1, 3, 5}, ProbeList(recs))
	assert.Empty(t, ProbeList(nil))
}

func TestIndexKey(t *testing.T) {
	r := RightRecord{XR: 877, YR: 546, K: 76}
	assert.Equal(t, int64(877*9564+76), IndexKey(r, 9564))
}
