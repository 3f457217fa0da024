package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/touchstroke"
	"github.com/gogpu/touchstroke/internal/imageio"
	"github.com/gogpu/touchstroke/session"
)

func loadTestSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.LoadFile(filepath.Join("testdata", "two_fingers.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	return s
}

func TestRenderRaster(t *testing.T) {
	out := filepath.Join(t.TempDir(), "strokes.png")
	if err := renderRaster(context.Background(), loadTestSession(t), out, imageio.PNG, nil); err != nil {
		t.Fatalf("renderRaster() = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("bounds = %v, want 160x120", b)
	}

	// Midpoint of the first segment of contact 2 ("#200").
	r, g, b, _ := img.At(50, 20).RGBA()
	want := touchstroke.Color(2)
	if d := int(r>>8) - int(want.R*255+0.5); d < -3 || d > 3 || g>>8 > 3 || b>>8 > 3 {
		t.Errorf("pixel (50,20) = %d,%d,%d, want ~%v", r>>8, g>>8, b>>8, want)
	}
	// Background stays white.
	if r, g, b, _ := img.At(2, 60).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("background pixel = %d,%d,%d, want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderVector(t *testing.T) {
	out := filepath.Join(t.TempDir(), "strokes.svg")
	if err := renderVector(context.Background(), loadTestSession(t), out, nil); err != nil {
		t.Fatalf("renderVector() = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	for _, want := range []string{"<svg", `width="160"`, `d="M20 20 L80 20"`, `fill="#ffffff"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderRasterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "strokes.png")
	if err := renderRaster(ctx, loadTestSession(t), out, imageio.PNG, nil); err == nil {
		t.Error("renderRaster() with cancelled context = nil, want error")
	}
}
