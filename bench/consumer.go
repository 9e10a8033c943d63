package bench

import (
	"context"
	"time"
)

// Observer is notified once per batch with cumulative totals.
type Observer interface {
	Update(rows, bytes int64)
}

type StreamResult struct {
	Results  []BatchResult
	Rows     int64
	Bytes    int64
	Duration time.Duration
}

// Consume pulls the stream to exhaustion, one batch at a time, measuring
// each batch and reporting the running totals to obs after every pull.
// The first error aborts the run; the partial result up to that point is
// still returned alongside a StreamError.
func Consume(ctx context.Context, s BatchStream, obs Observer) (StreamResult, error) {
	var res StreamResult
	start := time.Now()

	for {
		fetchStart := time.Now()
		b, err := s.Next(ctx)
		if err != nil {
			res.Duration = time.Since(start)
			return res, &StreamError{Batch: len(res.Results) + 1, Err: err}
		}
		if b == nil {
			res.Duration = time.Since(start)
			return res, nil
		}

		res.Results = append(res.Results, BatchResult{
			Rows:     b.Len(),
			Bytes:    b.Bytes,
			Duration: time.Since(fetchStart),
		})
		res.Rows += int64(b.Len())
		res.Bytes += b.Bytes

		if obs != nil {
			obs.Update(res.Rows, res.Bytes)
		}
	}
}
