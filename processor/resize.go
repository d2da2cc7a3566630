// Package processor provides the image resampling used to synthesize
// missing icon resolutions.
package processor

import (
	"image"
	"math"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Resizer defines interface for simple image resizing
type Resizer interface {
	// Resize returns src scaled to width x height pixels.
	Resize(src image.Image, width, height uint) image.Image
}

// LanczosResizer implements Resizer using Lanczos3 resampling, the
// high-quality downscale used for synthesized icon entries.
// Pure Go (nfnt/resize), no CGO dependency for easier deployment.
type LanczosResizer struct{}

func NewLanczosResizer() *LanczosResizer {
	return &LanczosResizer{}
}

func (p *LanczosResizer) Resize(src image.Image, width, height uint) image.Image {
	return resize.Resize(width, height, src, resize.Lanczos3)
}

// PadResizer implements Resizer by scaling with CatmullRom onto a
// transparent square canvas, preserving aspect ratio for non-square
// sources.
type PadResizer struct{}

func NewPadResizer() *PadResizer {
	return &PadResizer{}
}

func (p *PadResizer) Resize(src image.Image, width, height uint) image.Image {
	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	scale := math.Min(float64(width)/float64(srcW), float64(height)/float64(srcH))
	newW := int(math.Round(float64(srcW) * scale))
	newH := int(math.Round(float64(srcH) * scale))

	dst := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	offX := (int(width) - newW) / 2
	offY := (int(height) - newH) / 2
	dr := image.Rect(offX, offY, offX+newW, offY+newH)
	xdraw.CatmullRom.Scale(dst, dr, src, srcBounds, xdraw.Over, nil)
	return dst
}

// Square reports whether the image has equal width and height.
func Square(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() == b.Dy()
}

// Ensure implementations satisfy Resizer.
var (
	_ Resizer = (*LanczosResizer)(nil)
	_ Resizer = (*PadResizer)(nil)
)
