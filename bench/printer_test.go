package bench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"streambench/bench"
)

func TestFmtCount(t *testing.T) {
	assert.Equal(t, "0", bench.FmtCount(0))
	assert.Equal(t, "999", bench.FmtCount(999))
	assert.Equal(t, "1.0k", bench.FmtCount(1000))
	assert.Equal(t, "65.5k", bench.FmtCount(65536))
	assert.Equal(t, "150.0k", bench.FmtCount(150000))
	assert.Equal(t, "2.5M", bench.FmtCount(2500000))
}

func TestFmtBytes(t *testing.T) {
	assert.Equal(t, "512 B", bench.FmtBytes(512))
	assert.Equal(t, "2.0 KB", bench.FmtBytes(2048))
	assert.Equal(t, "1.5 MB", bench.FmtBytes(3*1024*1024/2))
	assert.Equal(t, "2.00 GB", bench.FmtBytes(2*1024*1024*1024))
}

func TestFmtDur(t *testing.T) {
	assert.Equal(t, "250µs", bench.FmtDur(250*time.Microsecond))
	assert.Equal(t, "1.50ms", bench.FmtDur(1500*time.Microsecond))
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, int64(0), bench.SizeOf(nil))
	assert.Equal(t, int64(5), bench.SizeOf("area3"))
	assert.Equal(t, int64(3), bench.SizeOf([]byte{1, 2, 3}))
	assert.Equal(t, int64(8), bench.SizeOf(time.Now()))
	assert.Equal(t, int64(1), bench.SizeOf(true))
	assert.Equal(t, int64(8), bench.SizeOf(int64(42)))
	assert.Equal(t, int64(8), bench.SizeOf(3.14))
}
