package bench

import (
	"context"
	"time"
)

type ConnConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type StreamParams struct {
	Query     string `yaml:"query"`
	BatchSize int    `yaml:"batch_size"`
	Runs      int    `yaml:"runs"`      // number of runs for median (0 = single run)
	SeedRows  int    `yaml:"seed_rows"` // rows to insert for test data (0 = table assumed present)
}

// Batch is one ordered block of result records pulled from the data source.
// The consumer owns it for a single iteration step and drops it after
// measuring; no batch is revisited.
type Batch struct {
	Rows  [][]any
	Bytes int64
}

func (b *Batch) Len() int {
	return len(b.Rows)
}

// BatchStream is the one capability required of a data-source driver:
// yield the next batch, or (nil, nil) once the stream is exhausted.
// A stream is lazy, finite and not restartable.
type BatchStream interface {
	Next(ctx context.Context) (*Batch, error)
	Close()
}

type BatchResult struct {
	Rows     int
	Bytes    int64
	Duration time.Duration // time spent waiting for this batch
}

type StreamStats struct {
	Label      string
	Batches    int
	Rows       int64
	Bytes      int64
	Duration   time.Duration
	RowsPerSec float64
	MBPerSec   float64
	FetchAvg   time.Duration
	FetchMin   time.Duration
	FetchMax   time.Duration
	FetchP50   time.Duration
	FetchP75   time.Duration
	FetchP90   time.Duration
	FetchP95   time.Duration
	FetchP99   time.Duration
}
