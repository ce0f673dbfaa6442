package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	plan9 "image/color/palette"
	"image/draw"
	"image/gif"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
)

// ErrNothingMounted is returned when a host has no scene to draw.
var ErrNothingMounted = errors.New("no scene is mounted")

// Snapshot draws the host's scene as it is now.
func Snapshot(h *host.Host, opt Options) (*image.RGBA, error) {
	sc, _ := h.Frame()
	if sc == nil {
		return nil, ErrNothingMounted
	}
	return Render(Flatten(sc), h.Rig, opt), nil
}

// Animate records opt.Frames frames of the host's scene, stepping clock
// between them, and encodes them as a looping GIF. Scenes are sampled in
// order on the calling goroutine; the frames are drawn concurrently.
func Animate(ctx context.Context, h *host.Host, clock *host.StepClock, opt Options) (*gif.GIF, error) {
	if opt.Frames <= 0 || opt.FPS <= 0 {
		return nil, fmt.Errorf("cannot animate %d frames at %d fps", opt.Frames, opt.FPS)
	}

	step := time.Second / time.Duration(opt.FPS)
	frames := make([]Frame, opt.Frames)
	for i := range frames {
		sc, _ := h.Frame()
		if sc == nil {
			return nil, ErrNothingMounted
		}
		frames[i] = Flatten(sc)
		clock.Step(step)
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, opt.Frames),
		Delay:     make([]int, opt.Frames),
		LoopCount: 0,
	}
	delay := 100 / opt.FPS
	if delay < 1 {
		delay = 1
	}

	rig := h.Rig
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range frames {
		i, f := i, f // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rgba := Render(f, rig, opt)
			pimg := image.NewPaletted(rgba.Bounds(), plan9.Plan9)
			draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
			out.Image[i], out.Delay[i] = pimg, delay
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to draw frames: %w", err)
	}
	return out, nil
}
