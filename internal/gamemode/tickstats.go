package gamemode

import "time"

// TickStats tracks how long simulation frames take: the mean over the last
// Window frames, plus the fastest and slowest frame seen overall.
type TickStats struct {
	Count    int
	Min, Max time.Duration

	window []time.Duration
	next   int
	full   bool
	sum    time.Duration
}

func NewTickStats(window int) *TickStats {
	if window < 1 {
		window = 1
	}
	return &TickStats{window: make([]time.Duration, window)}
}

func (s *TickStats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Count++

	// Evict the oldest sample once the window has wrapped
	s.sum += d - s.window[s.next]
	s.window[s.next] = d
	s.next++
	if s.next == len(s.window) {
		s.next = 0
		s.full = true
	}
}

// Mean is the average over the retained window, zero before the first frame.
func (s *TickStats) Mean() time.Duration {
	n := s.next
	if s.full {
		n = len(s.window)
	}
	if n == 0 {
		return 0
	}
	return s.sum / time.Duration(n)
}
