package gamemode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mcpi/internal/gamemode"
)

func TestPlayback_RunsToLimit(t *testing.T) {
	p := gamemode.NewPlayback(3)
	now := time.Unix(0, 0)

	produced := 0
	for i := 0; i < 10; i++ {
		if p.Update(gamemode.Input{}, now) {
			p.Advance()
			produced++
		}
		now = now.Add(time.Millisecond)
	}
	assert.Equal(t, 3, produced)
	assert.Equal(t, gamemode.PlaybackFinished, p.State)
	assert.Equal(t, 1.0, p.Progress())
	assert.Equal(t, 2*time.Millisecond, p.Elapsed)
}

func TestPlayback_Unbounded(t *testing.T) {
	p := gamemode.NewPlayback(0)
	now := time.Unix(0, 0)
	for i := 0; i < 1000; i++ {
		assert.True(t, p.Update(gamemode.Input{}, now))
		p.Advance()
	}
	assert.Equal(t, gamemode.PlaybackRunning, p.State)
	assert.Equal(t, -1.0, p.Progress())
}

func TestPlayback_Pause(t *testing.T) {
	p := gamemode.NewPlayback(0)
	now := time.Unix(0, 0)

	assert.False(t, p.Update(gamemode.Input{TogglePause: true}, now))
	assert.Equal(t, gamemode.PlaybackPaused, p.State)
	assert.Equal(t, "PAUSED", p.State.String())

	now = now.Add(time.Second)
	assert.False(t, p.Update(gamemode.Input{}, now))
	assert.Equal(t, time.Duration(0), p.Elapsed)

	assert.True(t, p.Update(gamemode.Input{TogglePause: true}, now))
	assert.Equal(t, gamemode.PlaybackRunning, p.State)
}

func TestPlayback_FinishedIgnoresPause(t *testing.T) {
	p := gamemode.NewPlayback(1)
	now := time.Unix(0, 0)
	p.Update(gamemode.Input{}, now)
	p.Advance()

	assert.False(t, p.Update(gamemode.Input{TogglePause: true}, now))
	assert.Equal(t, gamemode.PlaybackFinished, p.State)
}
