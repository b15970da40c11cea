package sampler_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpi/internal/sampler"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		p      sampler.Point
		r      float64
		inside bool
	}{
		{"origin", sampler.Point{X: 0, Y: 0}, 1, true},
		{"corner", sampler.Point{X: 1, Y: 1}, 1, false},
		{"half", sampler.Point{X: 0.5, Y: 0.5}, 1, true},
		{"boundary x", sampler.Point{X: -1, Y: 0}, 1, true},
		{"boundary y", sampler.Point{X: 0, Y: 1}, 1, true},
		{"just outside", sampler.Point{X: 1, Y: 1e-4}, 1, false},
		{"larger radius", sampler.Point{X: 1.5, Y: 1.0}, 2, true},
		{"small radius", sampler.Point{X: 0.3, Y: 0.3}, 0.5, true},
		{"small radius outside", sampler.Point{X: 0.3, Y: 0.41}, 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, sampler.Classify(tt.p, tt.r))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN()} {
		_, err := sampler.New(r, sampler.NewPCGSource(1))
		assert.Truef(t, errors.Is(err, sampler.ErrInvalidRadius), "radius %v: got %v", r, err)
	}
	_, err := sampler.New(1, nil)
	assert.ErrorIs(t, err, sampler.ErrNilSource)
}

func TestNext_ReplayScenario(t *testing.T) {
	src := sampler.NewReplaySource(0, 0, 1, 1, 0.5, 0.5, -1, 0)
	s, err := sampler.New(1, src)
	require.NoError(t, err)

	var flags []bool
	for i := 0; i < 4; i++ {
		smp, err := s.Next()
		require.NoError(t, err)
		flags = append(flags, smp.Inside)
	}
	assert.Equal(t, []bool{true, false, true, true}, flags)
	assert.Equal(t, 0, src.Remaining())

	_, err = s.Next()
	assert.ErrorIs(t, err, sampler.ErrSourceExhausted)
}

func TestNext_FailsOnSecondCoordinate(t *testing.T) {
	s, err := sampler.New(1, sampler.NewReplaySource(0.1))
	require.NoError(t, err)

	_, err = s.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, sampler.ErrSourceExhausted)
	assert.Contains(t, err.Error(), "draw y")
}

func TestBatch(t *testing.T) {
	s, err := sampler.New(1, sampler.NewReplaySource(0, 0, 2, 0, 0.1))
	require.NoError(t, err)

	got, err := s.Batch(0)
	assert.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Batch(3)
	assert.ErrorIs(t, err, sampler.ErrSourceExhausted)
	require.Len(t, got, 2)
	assert.True(t, got[0].Inside)
	assert.False(t, got[1].Inside)
}

func TestPCGSource(t *testing.T) {
	a := sampler.NewPCGSource(42)
	b := sampler.NewPCGSource(42)

	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		va, err := a.Uniform()
		require.NoError(t, err)
		vb, _ := b.Uniform()
		require.Equal(t, va, vb)
		require.GreaterOrEqual(t, va, -1.0)
		require.LessOrEqual(t, va, 1.0)
		sum += va
	}
	assert.InDelta(t, 0.0, sum/n, 0.02)
}

func TestReaderSource(t *testing.T) {
	data := append(bytes.Repeat([]byte{0x00}, 8), bytes.Repeat([]byte{0xff}, 8)...)
	src := sampler.NewReaderSource(bytes.NewReader(data))

	lo, err := src.Uniform()
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)

	hi, err := src.Uniform()
	require.NoError(t, err)
	assert.Less(t, hi, 1.0)
	assert.InDelta(t, 1.0, hi, 1e-9)

	_, err = src.Uniform()
	assert.ErrorIs(t, err, sampler.ErrSourceExhausted)
}

func TestReaderSource_ShortRead(t *testing.T) {
	src := sampler.NewReaderSource(bytes.NewReader([]byte{1, 2, 3}))
	_, err := src.Uniform()
	assert.ErrorIs(t, err, sampler.ErrSourceExhausted)
}

func TestCryptoSource(t *testing.T) {
	s, err := sampler.New(1, sampler.NewCryptoSource())
	require.NoError(t, err)
	got, err := s.Batch(100)
	require.NoError(t, err)
	for _, smp := range got {
		assert.Equal(t, sampler.Classify(smp.Point, 1), smp.Inside)
	}
}
