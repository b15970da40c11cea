package console_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpi/internal/console"
	"mcpi/internal/estimator"
	"mcpi/internal/sampler"
)

// syncBuffer guards the buffer against the bar's refresh goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newEstimator(t *testing.T, src sampler.Source) *estimator.Estimator {
	t.Helper()
	s, err := sampler.New(1, src)
	require.NoError(t, err)
	return estimator.New(s)
}

func TestRun_Bounded(t *testing.T) {
	out := &syncBuffer{}
	p := &console.Presenter{Out: out, Frames: 5, Batch: 10, Interval: time.Millisecond}

	last, err := p.Run(context.Background(), newEstimator(t, sampler.NewPCGSource(5)))
	require.NoError(t, err)
	assert.Equal(t, uint64(50), last.Tally.Total())
	assert.Equal(t, 5, last.Index)
	assert.True(t, last.Estimate.Valid)
	assert.Contains(t, out.String(), last.Estimate.Title())
	assert.Contains(t, out.String(), "total=50")
}

func TestRun_Cancelled(t *testing.T) {
	out := &syncBuffer{}
	p := &console.Presenter{Out: out, Frames: 0, Batch: 10, Interval: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	last, err := p.Run(ctx, newEstimator(t, sampler.NewPCGSource(5)))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), last.Tally.Total())
	assert.Contains(t, out.String(), "PI ≈ n/a")
}

func TestRun_SourceFailure(t *testing.T) {
	out := &syncBuffer{}
	p := &console.Presenter{Out: out, Frames: 3, Batch: 2, Interval: time.Millisecond}

	_, err := p.Run(context.Background(), newEstimator(t, sampler.NewReplaySource(0, 0, 1, 1, 0.5)))
	assert.ErrorIs(t, err, sampler.ErrSourceExhausted)
}
