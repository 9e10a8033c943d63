package bench

import (
	"fmt"
	"io"
	"time"
)

// Progress is the console meter updated once per batch. Cumulative volume is
// shown scaled to thousands of rows; the scaling is display-only.
type Progress struct {
	w       io.Writer
	start   time.Time
	updates int
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w, start: time.Now()}
}

func (p *Progress) Update(rows, bytes int64) {
	p.updates++
	elapsed := time.Since(p.start).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(rows) / elapsed
	}
	fmt.Fprintf(p.w, "\r  %s rows  %s  %s rows/s   ",
		FmtCount(rows), FmtBytes(bytes), FmtCount(int64(rate)))
}

// Updates reports how many batches have been observed so far.
func (p *Progress) Updates() int {
	return p.updates
}

// Finish terminates the meter line. Safe to call when nothing was printed.
func (p *Progress) Finish() {
	if p.updates > 0 {
		fmt.Fprintln(p.w)
	}
}
