package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/cache"
	"github.com/colqhq/colq/columnar"
)

// tableOfBytes returns a single-row table whose NumBytes() is exactly n,
// so test scenarios can use the byte sizes from the cache spec directly.
func tableOfBytes(t *testing.T, n int) columnar.Table {
	t.Helper()
	tbl, err := columnar.NewMemTable([]string{"v"}, []columnar.Column{
		&columnar.StringColumn{Values: []string{string(make([]byte, n))}, Valid: []bool{true}},
	})
	require.NoError(t, err)
	return tbl
}

func TestGetMissThenHit(t *testing.T) {
	c := cache.NewWeighted(1<<20, nil)
	_, ok := c.Get("a")
	require.False(t, ok)

	c.Put("a", tableOfBytes(t, 10), 1.0)
	tbl, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, int64(10), tbl.NumBytes())
}

func TestGetDoesNotAlterImportance(t *testing.T) {
	budget := int64(60)
	c := cache.NewWeighted(budget, nil)

	c.Put("k1", tableOfBytes(t, 60), 1.0)
	for i := 0; i < 10; i++ {
		c.Get("k1")
	}
	// k1's importance is still 1.0: a newcomer with the same weight is
	// not strictly greater, so it must still be rejected.
	c.Put("k2", tableOfBytes(t, 60), 1.0)
	_, k1Resident := c.Get("k1")
	_, k2Resident := c.Get("k2")
	require.True(t, k1Resident)
	require.False(t, k2Resident)
}

// TestEvictionByImportance implements scenario S6 verbatim: max_memory
// 100, K1 (size 60, weight 1.0) and K2 (size 30, weight 1.0) both
// resident (memory 90). K3 (size 50, weight 0.5) is rejected because
// 0.5 does not exceed the minimum resident importance of 1.0. Putting
// K3 again with weight 1.0 brings its accumulated importance to 1.5,
// which exceeds K1's 1.0; K1 is evicted and K3 is admitted.
func TestEvictionByImportance(t *testing.T) {
	c := cache.NewWeighted(100, nil)

	c.Put("K1", tableOfBytes(t, 60), 1.0)
	c.Put("K2", tableOfBytes(t, 30), 1.0)
	_, k1Resident := c.Get("K1")
	_, k2Resident := c.Get("K2")
	require.True(t, k1Resident)
	require.True(t, k2Resident)
	require.Equal(t, int64(90), c.UsedBytes())

	c.Put("K3", tableOfBytes(t, 50), 0.5)
	_, k3Resident := c.Get("K3")
	require.False(t, k3Resident)
	require.Equal(t, int64(90), c.UsedBytes())

	c.Put("K3", tableOfBytes(t, 50), 1.0)
	_, k1StillResident := c.Get("K1")
	_, k3NowResident := c.Get("K3")
	_, k2StillResident := c.Get("K2")
	require.False(t, k1StillResident)
	require.True(t, k3NowResident)
	require.True(t, k2StillResident)
	require.Equal(t, int64(80), c.UsedBytes())
}
