package bench

import (
	"fmt"
	"time"
)

// RunMultiple executes runFn N times, checks steady-state, returns median.
// runFn receives the run index (0-based) and returns stats for that run.
// A failed run aborts the whole benchmark; errors here are fatal.
func RunMultiple(runs int, label string, runFn func(run int) (StreamStats, error)) (StreamStats, error) {
	if runs <= 1 {
		return runFn(0)
	}

	fmt.Printf("\n╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║  %d-RUN BENCHMARK: %-38s║\n", runs, label)
	fmt.Printf("║  Methodology: median of %d runs, steady-state verified    ║\n", runs)
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")

	allRuns := make([]StreamStats, runs)

	for i := 0; i < runs; i++ {
		fmt.Printf("\n── Run %d/%d ──\n", i+1, runs)
		stats, err := runFn(i)
		if err != nil {
			return StreamStats{}, err
		}
		allRuns[i] = stats

		fmt.Printf("  Run %d: rows=%s  rows/s=%s  p50=%s  p95=%s\n",
			i+1,
			FmtCount(stats.Rows),
			FmtCount(int64(stats.RowsPerSec)),
			FmtDur(stats.FetchP50),
			FmtDur(stats.FetchP95))

		// Cooldown pause between runs (not after last)
		if i < runs-1 {
			fmt.Print("  Cooling down (3s)...")
			time.Sleep(3 * time.Second)
			fmt.Println(" done")
		}
	}

	// Steady-state check
	steady, maxDev := SteadyState(allRuns, 0.05)
	fmt.Printf("\n── Steady-State Check ──\n")
	fmt.Printf("  Max throughput deviation: %.1f%%\n", maxDev*100)
	if steady {
		fmt.Println("  ✅ PASSED (within ±5%)")
	} else {
		fmt.Printf("  ⚠️  FAILED (%.1f%% > 5%%) — results still reported as median\n", maxDev*100)
	}

	// Pick median
	median := MedianStats(allRuns)
	median.Label = fmt.Sprintf("%s (median of %d runs)", label, runs)

	// Summary table
	fmt.Printf("\n╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║  ALL RUNS SUMMARY                                        ║\n")
	fmt.Printf("╠═════╦══════════╦══════════╦══════════╦═══════════════════╣\n")
	fmt.Printf("║ Run ║  Rows/s  ║   p50    ║   p95    ║ Rows              ║\n")
	fmt.Printf("╠═════╬══════════╬══════════╬══════════╬═══════════════════╣\n")
	for i, r := range allRuns {
		marker := "  "
		if r.RowsPerSec == median.RowsPerSec && r.FetchP50 == median.FetchP50 {
			marker = "→ "
		}
		fmt.Printf("║ %s%d  ║ %8s ║ %8s ║ %8s ║ %-17s ║\n",
			marker, i+1,
			FmtCount(int64(r.RowsPerSec)),
			FmtDur(r.FetchP50),
			FmtDur(r.FetchP95),
			FmtCount(r.Rows))
	}
	fmt.Printf("╚═════╩══════════╩══════════╩══════════╩═══════════════════╝\n")
	fmt.Println("  → = median (reported)")

	return median, nil
}
