package bench

import (
	"math"
	"sort"
	"time"
)

func ComputeStreamStats(label string, res StreamResult) StreamStats {
	stats := StreamStats{
		Label:    label,
		Batches:  len(res.Results),
		Rows:     res.Rows,
		Bytes:    res.Bytes,
		Duration: res.Duration,
	}

	if len(res.Results) == 0 {
		return stats
	}

	durations := make([]time.Duration, 0, len(res.Results))
	for _, r := range res.Results {
		durations = append(durations, r.Duration)
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var sum time.Duration
	for _, d := range durations {
		sum += d
	}

	stats.FetchAvg = sum / time.Duration(len(durations))
	stats.FetchMin = durations[0]
	stats.FetchMax = durations[len(durations)-1]
	stats.FetchP50 = pct(durations, 50)
	stats.FetchP75 = pct(durations, 75)
	stats.FetchP90 = pct(durations, 90)
	stats.FetchP95 = pct(durations, 95)
	stats.FetchP99 = pct(durations, 99)

	if secs := res.Duration.Seconds(); secs > 0 {
		stats.RowsPerSec = float64(res.Rows) / secs
		stats.MBPerSec = float64(res.Bytes) / (1024 * 1024) / secs
	}

	return stats
}

// MedianStats picks the median run by throughput from multiple runs.
func MedianStats(runs []StreamStats) StreamStats {
	if len(runs) == 1 {
		return runs[0]
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].RowsPerSec < runs[j].RowsPerSec })
	return runs[len(runs)/2]
}

// SteadyState checks if throughput variance across runs is within tolerance.
func SteadyState(runs []StreamStats, tolerance float64) (bool, float64) {
	if len(runs) < 2 {
		return true, 0
	}
	var sum float64
	for _, r := range runs {
		sum += r.RowsPerSec
	}
	mean := sum / float64(len(runs))
	if mean == 0 {
		return false, 0
	}

	var maxDev float64
	for _, r := range runs {
		dev := math.Abs(r.RowsPerSec-mean) / mean
		if dev > maxDev {
			maxDev = dev
		}
	}
	return maxDev <= tolerance, maxDev
}

func pct(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
