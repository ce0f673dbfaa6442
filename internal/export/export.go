// Package export writes the mounted scene of a host to disk, as a JSON
// snapshot of its scene graph, a still PNG or an animated GIF.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/raster"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

// ErrUnsupportedFormat is returned for output files whose extension isn't
// .json, .png or .gif.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Output is the JSON snapshot of a scene.
type Output struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Elapsed is the number of seconds the scene had been animated for
	Elapsed float64 `json:"elapsed"`

	Overlay host.Overlay `json:"overlay"`
	Rig     host.Rig     `json:"rig"`
	Scene   *scene.Scene `json:"scene"`
}

// Formats are the file extensions Write understands.
func Formats() []string {
	return []string{".json", ".png", ".gif"}
}

// Write saves the host's scene to filename in the format named by its
// extension. clock must be the clock the host was built with; animations
// step it one frame at a time.
func Write(ctx context.Context, filename string, h *host.Host, clock *host.StepClock, opt raster.Options) (output []byte, err error) {
	if h.Scene() == nil {
		return nil, raster.ErrNothingMounted
	}

	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		if output, err = snapshot(h); err != nil {
			return nil, err
		}
		buf.Write(output)
	case ".png":
		img, err := raster.Snapshot(h, opt)
		if err != nil {
			return nil, err
		}
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode png: %w", err)
		}
	case ".gif":
		anim, err := raster.Animate(ctx, h, clock, opt)
		if err != nil {
			return nil, err
		}
		if err := gif.EncodeAll(&buf, anim); err != nil {
			return nil, fmt.Errorf("failed to encode gif: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q, expected one of %s", ErrUnsupportedFormat, ext, strings.Join(Formats(), ", "))
	}

	if err = os.WriteFile(filename, buf.Bytes(), 0666); err != nil {
		return nil, fmt.Errorf("failed to write the output: %w", err)
	}
	return buf.Bytes(), nil
}

// snapshot serializes the scene as it is on its current frame.
func snapshot(h *host.Host) ([]byte, error) {
	sc, elapsed := h.Frame()

	// same format as log.Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Time:    stamp,
		Elapsed: elapsed,
		Overlay: h.Overlay(),
		Rig:     h.Rig,
		Scene:   sc,
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %w", err)
	}
	return output, nil
}
