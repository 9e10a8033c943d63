package bench

import (
	"fmt"
	"time"
)

func PrintStats(s StreamStats) {
	fmt.Printf("\n┌─────────────────────────────────────────┐\n")
	fmt.Printf("│  %-39s│\n", s.Label)
	fmt.Printf("├─────────────────────────────────────────┤\n")
	fmt.Printf("│  Batches:      %-24d│\n", s.Batches)
	fmt.Printf("│  Rows:         %-24d│\n", s.Rows)
	fmt.Printf("│  Volume:       %-24s│\n", FmtBytes(s.Bytes))
	fmt.Printf("│  Duration:     %-24s│\n", s.Duration.Round(time.Millisecond))
	fmt.Printf("│  Rows/s:       %-24s│\n", FmtCount(int64(s.RowsPerSec)))
	fmt.Printf("│  MB/s:         %-24.1f│\n", s.MBPerSec)
	fmt.Printf("├─────────────────────────────────────────┤\n")
	fmt.Printf("│  Fetch avg:    %-24s│\n", FmtDur(s.FetchAvg))
	fmt.Printf("│  Fetch min:    %-24s│\n", FmtDur(s.FetchMin))
	fmt.Printf("│  Fetch max:    %-24s│\n", FmtDur(s.FetchMax))
	fmt.Printf("│  Fetch p50:    %-24s│\n", FmtDur(s.FetchP50))
	fmt.Printf("│  Fetch p75:    %-24s│\n", FmtDur(s.FetchP75))
	fmt.Printf("│  Fetch p90:    %-24s│\n", FmtDur(s.FetchP90))
	fmt.Printf("│  Fetch p95:    %-24s│\n", FmtDur(s.FetchP95))
	fmt.Printf("│  Fetch p99:    %-24s│\n", FmtDur(s.FetchP99))
	fmt.Printf("└─────────────────────────────────────────┘\n")
}

func FmtDur(d time.Duration) string {
	us := float64(d.Microseconds())
	if us < 1000 {
		return fmt.Sprintf("%.0fµs", us)
	}
	return fmt.Sprintf("%.2fms", us/1000)
}

// FmtCount renders row counts scaled to thousands, tqdm style.
func FmtCount(n int64) string {
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 1000000:
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
}

func FmtBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/(1024*1024*1024))
	}
}
