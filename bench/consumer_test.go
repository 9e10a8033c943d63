package bench_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streambench/bench"
)

// memStream yields a fixed number of deterministic rows chunked into batches
// of at most batchSize, optionally failing on a given pull.
type memStream struct {
	total     int
	batchSize int
	offset    int
	failAt    int // 1-based pull index to fail on, 0 = never
	pulls     int
	closed    bool
}

func (m *memStream) Next(_ context.Context) (*bench.Batch, error) {
	m.pulls++
	if m.failAt > 0 && m.pulls == m.failAt {
		return nil, errors.New("connection reset by peer")
	}
	if m.offset >= m.total {
		return nil, nil
	}

	n := m.batchSize
	if rem := m.total - m.offset; rem < n {
		n = rem
	}

	b := &bench.Batch{}
	for i := 0; i < n; i++ {
		id := int64(m.offset + i)
		label := fmt.Sprintf("area%d", id%8)
		b.Rows = append(b.Rows, []any{id, label})
		b.Bytes += 8 + int64(len(label))
	}
	m.offset += n
	return b, nil
}

func (m *memStream) Close() { m.closed = true }

// recorder captures every observer notification.
type recorder struct {
	rows  []int64
	bytes []int64
}

func (r *recorder) Update(rows, bytes int64) {
	r.rows = append(r.rows, rows)
	r.bytes = append(r.bytes, bytes)
}

func TestConsume_RowConservation(t *testing.T) {
	s := &memStream{total: 150000, batchSize: 65536}
	obs := &recorder{}

	res, err := bench.Consume(context.Background(), s, obs)
	require.NoError(t, err)

	assert.Equal(t, int64(150000), res.Rows)
	require.Len(t, res.Results, 3)
	assert.Equal(t, 65536, res.Results[0].Rows)
	assert.Equal(t, 65536, res.Results[1].Rows)
	assert.Equal(t, 18928, res.Results[2].Rows)

	// One notification per batch, cumulative count strictly increasing.
	require.Len(t, obs.rows, 3)
	for i := 1; i < len(obs.rows); i++ {
		assert.Greater(t, obs.rows[i], obs.rows[i-1])
	}
	assert.Equal(t, int64(150000), obs.rows[len(obs.rows)-1])
}

func TestConsume_BatchSizeIsUpperBound(t *testing.T) {
	s := &memStream{total: 1000, batchSize: 300}

	res, err := bench.Consume(context.Background(), s, nil)
	require.NoError(t, err)

	require.Len(t, res.Results, 4)
	for i, r := range res.Results[:len(res.Results)-1] {
		assert.Equal(t, 300, r.Rows, "batch %d", i+1)
	}
	assert.Equal(t, 100, res.Results[len(res.Results)-1].Rows)
}

func TestConsume_OrderStable(t *testing.T) {
	concat := func() []int64 {
		s := &memStream{total: 5000, batchSize: 700}
		var ids []int64
		for {
			b, err := s.Next(context.Background())
			require.NoError(t, err)
			if b == nil {
				break
			}
			for _, row := range b.Rows {
				ids = append(ids, row[0].(int64))
			}
		}
		return ids
	}

	first := concat()
	second := concat()
	assert.Equal(t, first, second)

	// Sequence order within the concatenation is the production order.
	for i, id := range first {
		require.Equal(t, int64(i), id)
	}
}

func TestConsume_FailureBeforeFirstBatch(t *testing.T) {
	s := &memStream{total: 1000, batchSize: 100, failAt: 1}
	obs := &recorder{}

	res, err := bench.Consume(context.Background(), s, obs)
	require.Error(t, err)

	var streamErr *bench.StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, 1, streamErr.Batch)

	// No progress was reported and nothing was counted.
	assert.Empty(t, obs.rows)
	assert.Zero(t, res.Rows)
	assert.Empty(t, res.Results)
}

func TestConsume_MidStreamFailureIsFatal(t *testing.T) {
	s := &memStream{total: 1000, batchSize: 100, failAt: 3}
	obs := &recorder{}

	res, err := bench.Consume(context.Background(), s, obs)
	require.Error(t, err)

	var streamErr *bench.StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, 3, streamErr.Batch)

	// Exactly the two successful batches were counted; no retry happened.
	assert.Equal(t, 3, s.pulls)
	assert.Equal(t, int64(200), res.Rows)
	assert.Len(t, obs.rows, 2)
}

func TestConsume_Idempotent(t *testing.T) {
	run := func() int64 {
		s := &memStream{total: 42000, batchSize: 4096}
		res, err := bench.Consume(context.Background(), s, nil)
		require.NoError(t, err)
		return res.Rows
	}

	assert.Equal(t, run(), run())
}

func TestConsume_EmptyStream(t *testing.T) {
	s := &memStream{total: 0, batchSize: 100}
	obs := &recorder{}

	res, err := bench.Consume(context.Background(), s, obs)
	require.NoError(t, err)

	assert.Zero(t, res.Rows)
	assert.Empty(t, res.Results)
	assert.Empty(t, obs.rows)
}

func TestConsume_CountsBytes(t *testing.T) {
	s := &memStream{total: 10, batchSize: 4}

	res, err := bench.Consume(context.Background(), s, nil)
	require.NoError(t, err)

	// Every generated row is 8 bytes of id plus a 5-byte label.
	assert.Equal(t, int64(10*13), res.Bytes)
}
