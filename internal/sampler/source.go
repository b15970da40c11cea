package sampler

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand/v2"

	"golang.org/x/xerrors"
)

// Source yields independent values uniformly distributed over [-1, 1].
type Source interface {
	Uniform() (float64, error)
}

var (
	_ Source = &PCGSource{}
	_ Source = &ReaderSource{}
	_ Source = &ReplaySource{}
)

// unit maps a value in [0, 1) onto [-1, 1).
func unit(f float64) float64 {
	return 2*f - 1
}

// PCGSource is a seeded pseudo-random source. The same seed always yields
// the same sequence.
type PCGSource struct {
	r *mrand.Rand
}

// NewPCGSource returns a PCG-backed source seeded with seed.
func NewPCGSource(seed uint64) *PCGSource {
	return &PCGSource{
		r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *PCGSource) Uniform() (float64, error) {
	return unit(s.r.Float64()), nil
}

// ReaderSource turns a byte stream into uniform values, eight bytes per draw.
// A short read is reported as ErrSourceExhausted.
type ReaderSource struct {
	r   io.Reader
	buf [8]byte
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// NewCryptoSource reads from the operating system's CSPRNG.
func NewCryptoSource() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

func (s *ReaderSource) Uniform() (float64, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, xerrors.Errorf("read (%v): %w", err, ErrSourceExhausted)
	}
	// 53 significant bits, same construction as math/rand.
	v := binary.LittleEndian.Uint64(s.buf[:]) >> 11
	return unit(float64(v) / (1 << 53)), nil
}

// ReplaySource hands back a fixed list of values and then fails. Values are
// returned as given, so callers can place points exactly.
type ReplaySource struct {
	values []float64
	pos    int
}

func NewReplaySource(values ...float64) *ReplaySource {
	return &ReplaySource{values: values}
}

func (s *ReplaySource) Uniform() (float64, error) {
	if s.pos >= len(s.values) {
		return 0, xerrors.Errorf("replay of %d values: %w", len(s.values), ErrSourceExhausted)
	}
	v := s.values[s.pos]
	s.pos++
	return v, nil
}

// Remaining reports how many values are left to replay.
func (s *ReplaySource) Remaining() int {
	return len(s.values) - s.pos
}
