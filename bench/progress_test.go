package bench_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"streambench/bench"
)

func TestProgress_Update(t *testing.T) {
	var buf bytes.Buffer
	p := bench.NewProgress(&buf)

	p.Update(1500, 2048)

	out := buf.String()
	assert.Contains(t, out, "1.5k rows")
	assert.Contains(t, out, "2.0 KB")
	assert.True(t, strings.HasPrefix(out, "\r"))
	assert.Equal(t, 1, p.Updates())
}

func TestProgress_CumulativeRedraw(t *testing.T) {
	var buf bytes.Buffer
	p := bench.NewProgress(&buf)

	p.Update(65536, 1<<20)
	p.Update(131072, 2<<20)
	p.Update(150000, 3<<20)
	p.Finish()

	out := buf.String()
	assert.Equal(t, 3, p.Updates())
	assert.Contains(t, out, "150.0k rows")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestProgress_SilentWhenUnused(t *testing.T) {
	var buf bytes.Buffer
	p := bench.NewProgress(&buf)

	p.Finish()

	assert.Empty(t, buf.String())
	assert.Zero(t, p.Updates())
}
