// Command touchreplay replays a recorded touch session and writes the
// resulting strokes as an image.
//
// Usage:
//
//	touchreplay -input session.yaml -output strokes.png
//	touchreplay -format svg -output strokes.svg session.yaml
//
// Every flag can also be set through a TOUCHSTROKE_* environment variable
// (TOUCHSTROKE_INPUT, TOUCHSTROKE_OUTPUT, TOUCHSTROKE_FORMAT, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/touchstroke"
	_ "github.com/gogpu/touchstroke/backends/svg" // registers the "svg" recording backend
	"github.com/gogpu/touchstroke/canvas"
	"github.com/gogpu/touchstroke/internal/config"
	"github.com/gogpu/touchstroke/internal/imageio"
	"github.com/gogpu/touchstroke/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "touchreplay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	touchstroke.SetLogger(logger)

	sess, err := session.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	if cfg.Width > 0 {
		sess.Width = cfg.Width
	}
	if cfg.Height > 0 {
		sess.Height = cfg.Height
	}

	var format imageio.Format
	if cfg.Format == "" {
		format, err = imageio.FormatFromPath(cfg.Output)
	} else {
		format, err = imageio.ParseFormat(cfg.Format)
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []touchstroke.Option{touchstroke.WithLineWidth(cfg.LineWidth)}
	if format == imageio.SVG {
		err = renderVector(ctx, sess, cfg.Output, opts)
	} else {
		err = renderRaster(ctx, sess, cfg.Output, format, opts)
	}
	if err != nil {
		return err
	}

	logger.Info("touchreplay: wrote output",
		"path", cfg.Output, "format", string(format),
		"width", sess.Width, "height", sess.Height)
	return nil
}

func renderRaster(ctx context.Context, sess *session.Session, out string, f imageio.Format, opts []touchstroke.Option) error {
	dc := gg.NewContext(sess.Width, sess.Height)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.Hex(sess.Background))

	surf := canvas.NewContext(dc)
	if err := session.Replay(ctx, sess, touchstroke.New(surf, opts...)); err != nil {
		return err
	}
	if err := surf.Err(); err != nil {
		return err
	}
	return imageio.WriteFile(out, dc.Image(), f)
}

func renderVector(ctx context.Context, sess *session.Session, out string, opts []touchstroke.Option) error {
	rec := canvas.NewRecorder(sess.Width, sess.Height)
	rec.Clear(sess.Background)
	if err := session.Replay(ctx, sess, touchstroke.New(rec, opts...)); err != nil {
		return err
	}

	backend, err := recording.NewBackend("svg")
	if err != nil {
		return err
	}
	if err := rec.Finish().Playback(backend); err != nil {
		return fmt.Errorf("svg playback: %w", err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("svg backend %T cannot write files", backend)
	}
	return fb.SaveToFile(out)
}
