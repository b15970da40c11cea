package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"mcpi/internal/config"
	"mcpi/internal/console"
	"mcpi/internal/estimator"
	"mcpi/internal/sampler"
	"mcpi/internal/snapshot"
)

const WindowTitle = "Monte Carlo Pi Approximation"

// presenter owns the frame loop: it ticks the estimator and shows each frame.
type presenter interface {
	Run(ctx context.Context, est *estimator.Estimator) (estimator.Frame, error)
}

func main() {
	if err := mainFunc(os.Args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
}

func mainFunc(args []string) error {
	// 1. Settings
	cfg, err := config.Load(args[0], args[1:])
	if err != nil {
		return err
	}

	logcfg := zap.NewDevelopmentConfig()
	logcfg.OutputPaths = []string{cfg.Log}
	logger, err := logcfg.Build()
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	sl.Infow("starting",
		"renderer", cfg.Renderer,
		"radius", cfg.Radius,
		"points_per_frame", cfg.PointsPerFrame,
		"frames", cfg.Frames,
		"interval", cfg.Interval,
		"source", cfg.Source)

	// 2. Core
	smp, err := sampler.New(cfg.Radius, newSource(cfg, sl))
	if err != nil {
		return xerrors.Errorf("sampler: %w", err)
	}
	est := estimator.New(smp)

	// 3. Presenter
	var p presenter
	switch cfg.Renderer {
	case config.RendererWindow:
		p = &window{cfg: cfg, log: sl}
	case config.RendererConsole:
		p = &console.Presenter{
			Out:      os.Stdout,
			Frames:   cfg.Frames,
			Batch:    cfg.PointsPerFrame,
			Interval: cfg.Interval,
			Log:      sl,
		}
	case config.RendererPNG:
		p = &snapshot.Presenter{
			Output: cfg.Output,
			Frames: cfg.Frames,
			Batch:  cfg.PointsPerFrame,
			Log:    sl,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	last, err := p.Run(ctx, est)
	if err != nil {
		sl.Errorw("presenter failed", "tally", est.Tally().String(), "error", err)
		return xerrors.Errorf("%s: %w", cfg.Renderer, err)
	}
	sl.Infow("finished",
		"tally", last.Tally.String(),
		"estimate", last.Estimate.String(),
		"stderr", last.Tally.StdErr())
	return nil
}

func newSource(cfg *config.Config, sl *zap.SugaredLogger) sampler.Source {
	if cfg.Source == config.SourceCrypto {
		return sampler.NewCryptoSource()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		sl.Debugw("seeded from clock", "seed", seed)
	}
	return sampler.NewPCGSource(seed)
}

// window runs the ebiten game loop until the window closes, the user quits
// or ctx is cancelled.
type window struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

func (w *window) Run(ctx context.Context, est *estimator.Estimator) (estimator.Frame, error) {
	// 1. Window Setup
	ebiten.SetWindowSize(ScreenWidth*w.cfg.Scale, ScreenHeight*w.cfg.Scale)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.cfg.TPS())

	// 2. Initialize Game
	game, err := NewGame(est, w.cfg.PointsPerFrame, w.cfg.Frames, w.log)
	if err != nil {
		return estimator.Frame{}, err
	}
	game.done = ctx.Done()

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		return game.last, err
	}
	return game.last, nil
}
