package bench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streambench/bench"
)

func resultWith(durations ...time.Duration) bench.StreamResult {
	res := bench.StreamResult{Duration: 2 * time.Second}
	for _, d := range durations {
		res.Results = append(res.Results, bench.BatchResult{Rows: 1000, Bytes: 1 << 20, Duration: d})
		res.Rows += 1000
		res.Bytes += 1 << 20
	}
	return res
}

func TestComputeStreamStats(t *testing.T) {
	res := resultWith(
		10*time.Millisecond, 20*time.Millisecond, 30*time.Millisecond,
		40*time.Millisecond, 50*time.Millisecond,
	)

	stats := bench.ComputeStreamStats("test", res)

	assert.Equal(t, 5, stats.Batches)
	assert.Equal(t, int64(5000), stats.Rows)
	assert.Equal(t, 10*time.Millisecond, stats.FetchMin)
	assert.Equal(t, 50*time.Millisecond, stats.FetchMax)
	assert.Equal(t, 30*time.Millisecond, stats.FetchAvg)
	assert.Equal(t, 30*time.Millisecond, stats.FetchP50)
	assert.Equal(t, 50*time.Millisecond, stats.FetchP99)

	// 5000 rows over 2s wall time.
	assert.InDelta(t, 2500, stats.RowsPerSec, 0.01)
	assert.InDelta(t, 2.5, stats.MBPerSec, 0.01)
}

func TestComputeStreamStats_Empty(t *testing.T) {
	stats := bench.ComputeStreamStats("empty", bench.StreamResult{})

	assert.Zero(t, stats.Batches)
	assert.Zero(t, stats.Rows)
	assert.Zero(t, stats.RowsPerSec)
	assert.Zero(t, stats.FetchP50)
}

func TestMedianStats(t *testing.T) {
	runs := []bench.StreamStats{
		{RowsPerSec: 900},
		{RowsPerSec: 1100},
		{RowsPerSec: 1000},
	}

	median := bench.MedianStats(runs)
	assert.Equal(t, float64(1000), median.RowsPerSec)
}

func TestSteadyState(t *testing.T) {
	steady := []bench.StreamStats{
		{RowsPerSec: 1000},
		{RowsPerSec: 1020},
		{RowsPerSec: 990},
	}
	ok, dev := bench.SteadyState(steady, 0.05)
	assert.True(t, ok)
	assert.Less(t, dev, 0.05)

	jittery := []bench.StreamStats{
		{RowsPerSec: 1000},
		{RowsPerSec: 500},
	}
	ok, dev = bench.SteadyState(jittery, 0.05)
	assert.False(t, ok)
	assert.Greater(t, dev, 0.05)
}

func TestSteadyState_SingleRun(t *testing.T) {
	ok, dev := bench.SteadyState([]bench.StreamStats{{RowsPerSec: 1000}}, 0.05)
	require.True(t, ok)
	assert.Zero(t, dev)
}
