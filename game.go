package main

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/xerrors"

	"mcpi/internal/entity"
	"mcpi/internal/estimator"
	"mcpi/internal/gamemode"
)

// Screen layout: a title band above a square plot area.
const (
	ScreenWidth  = 360
	ScreenHeight = 420
	TitleHeight  = 40
	PlotMargin   = 10
	PlotSize     = ScreenWidth - 2*PlotMargin
	HistorySize  = 600
	TickWindow   = 120
)

var (
	ColBg    = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}
	ColTitle = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

type ViewMode int

const (
	ModeScatter ViewMode = iota
	ModeConvergence
)

// Game drives one Estimator tick per ebiten update and renders the result.
type Game struct {
	CurrentMode ViewMode
	Tick        int

	est      *estimator.Estimator
	batch    int
	playback *gamemode.Playback
	history  *estimator.History
	last     estimator.Frame
	tickTime *gamemode.TickStats

	cloud *entity.Cloud
	trace *entity.Trace
	face  text.Face
	log   *zap.SugaredLogger
	done  <-chan struct{}
}

func NewGame(est *estimator.Estimator, batch, frames int, log *zap.SugaredLogger) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, xerrors.Errorf("title font: %w", err)
	}
	top := float64(TitleHeight + PlotMargin)
	return &Game{
		CurrentMode: ModeScatter,
		est:         est,
		batch:       batch,
		playback:    gamemode.NewPlayback(frames),
		history:     estimator.NewHistory(HistorySize),
		tickTime:    gamemode.NewTickStats(TickWindow),
		last:        estimator.Frame{Tally: est.Tally(), Estimate: est.Tally().Estimate()},
		cloud:       entity.NewCloud(PlotMargin, top, PlotSize, est.Radius()),
		trace:       entity.NewTrace(PlotMargin, top, PlotSize, PlotSize),
		face:        &text.GoTextFace{Source: src, Size: 18},
		log:         log,
	}, nil
}

// Update: one simulation frame per tick while running
func (g *Game) Update() error {
	g.Tick++

	select {
	case <-g.done:
		g.log.Infow("stopped by signal", "frames", g.playback.Frames)
		return ebiten.Termination
	default:
	}

	// Global keys
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.log.Infow("window closed by user", "frames", g.playback.Frames)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.CurrentMode = ModeScatter
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.CurrentMode = ModeConvergence
	}

	in := gamemode.Input{TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace)}
	if !g.playback.Update(in, time.Now()) {
		return nil
	}

	start := time.Now()
	frame, err := g.est.Step(g.batch)
	if err != nil {
		return xerrors.Errorf("frame %d: %w", g.playback.Frames, err)
	}
	g.tickTime.Add(time.Since(start))

	g.cloud.Add(frame.Samples)
	g.history.Record(frame.Estimate)
	g.last = frame

	g.playback.Advance()
	if g.playback.State == gamemode.PlaybackFinished {
		g.log.Infow("frame budget spent",
			"frames", g.playback.Frames,
			"tally", frame.Tally.String(),
			"estimate", frame.Estimate.String())
	}
	return nil
}

// Draw: title, then the active view, then the status overlay
func (g *Game) Draw(screen *ebiten.Image) {
	// 1. Clear Screen
	screen.Fill(ColBg)

	// 2. Title
	op := &text.DrawOptions{}
	op.GeoM.Translate(ScreenWidth/2, TitleHeight/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ColTitle)
	text.Draw(screen, g.last.Estimate.Title(), g.face, op)

	// 3. View Router
	switch g.CurrentMode {
	case ModeScatter:
		g.cloud.Draw(screen)
	case ModeConvergence:
		// keep painting points so the scatter is current when switching back
		g.cloud.Flush()
		g.trace.Draw(screen, g.history.Values())
	}

	// 4. Status
	t := g.last.Tally
	msg := fmt.Sprintf("%s  in:%d out:%d  se:%.4f  tick %dus (max %dus)",
		g.playback.State, t.Inside, t.Outside, t.StdErr(),
		g.tickTime.Mean().Microseconds(), g.tickTime.Max.Microseconds())
	ebitenutil.DebugPrintAt(screen, msg, PlotMargin, ScreenHeight-18)
}

// Layout: fixed logical size, ebiten scales to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
