package gamemode

import "time"

type PlaybackState int

const (
	PlaybackRunning  PlaybackState = iota // Ticking every update
	PlaybackPaused                        // Frozen by the user
	PlaybackFinished                      // Frame budget spent
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackRunning:
		return "RUNNING"
	case PlaybackPaused:
		return "PAUSED"
	case PlaybackFinished:
		return "DONE"
	}
	return "UNKNOWN"
}

// Input is the per-update key state the playback reacts to.
type Input struct {
	TogglePause bool
}

// Playback decides whether the current update should advance the
// simulation. Limit 0 means run until stopped.
type Playback struct {
	State   PlaybackState
	Limit   int
	Frames  int
	Started time.Time
	Elapsed time.Duration

	lastUpdate time.Time
}

func NewPlayback(limit int) *Playback {
	return &Playback{
		State: PlaybackRunning,
		Limit: limit,
	}
}

// Update applies input and reports whether a frame should be produced now.
func (p *Playback) Update(in Input, now time.Time) bool {
	if p.Started.IsZero() {
		p.Started = now
		p.lastUpdate = now
	}

	// Handle State Logic
	switch p.State {
	case PlaybackRunning:
		p.Elapsed += now.Sub(p.lastUpdate)
		if in.TogglePause {
			p.State = PlaybackPaused
		}
	case PlaybackPaused:
		if in.TogglePause {
			p.State = PlaybackRunning
		}
	}
	p.lastUpdate = now

	return p.State == PlaybackRunning
}

// Advance records a produced frame and finishes once the limit is reached.
func (p *Playback) Advance() {
	p.Frames++
	if p.Limit > 0 && p.Frames >= p.Limit {
		p.State = PlaybackFinished
	}
}

// Progress is the fraction of the frame budget spent, or -1 when unbounded.
func (p *Playback) Progress() float64 {
	if p.Limit <= 0 {
		return -1
	}
	return float64(p.Frames) / float64(p.Limit)
}
