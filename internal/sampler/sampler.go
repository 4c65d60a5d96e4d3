package sampler

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chip8rt/refextract/internal/bitmap"
	"github.com/chip8rt/refextract/internal/config"
)

// Sampler recovers a logical boolean grid from an image that was
// produced by upscaling a low-resolution binary display. One sample is
// read per block, at the block's center, which avoids block edges where
// anti-aliasing artifacts are most likely. This assumes each block is
// visually uniform, which holds for nearest-neighbor or flat-fill
// upscaled sources.
type Sampler struct {
	// Scale is the integer upscale factor of the source image.
	Scale int
	// Threshold is the brightness cutoff: a cell is on when the mean of
	// its center sample's R, G, B channels strictly exceeds it.
	Threshold int
}

// New returns a Sampler with the standard test-suite policy:
// 12x blocks, threshold 128.
func New() *Sampler {
	return &Sampler{
		Scale:     config.DefaultScale,
		Threshold: config.BrightnessThreshold,
	}
}

// Report describes one sampling pass for console diagnostics.
type Report struct {
	ImageWidth  int
	ImageHeight int
	Cols        int
	Rows        int
	Scale       int
	// Truncated is set when the image dimensions are not evenly
	// divisible by Scale. The trailing partial blocks are dropped;
	// this is never fatal.
	Truncated bool
}

// Sample maps img to a (W/Scale)x(H/Scale) grid. Grid coordinates are
// relative to the image bounds, so sub-images sample correctly.
func (s *Sampler) Sample(img image.Image) (*bitmap.Grid, Report, error) {
	if s.Scale < 1 {
		return nil, Report{}, fmt.Errorf("scale must be positive, got %d", s.Scale)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rep := Report{
		ImageWidth:  w,
		ImageHeight: h,
		Cols:        w / s.Scale,
		Rows:        h / s.Scale,
		Scale:       s.Scale,
		Truncated:   w%s.Scale != 0 || h%s.Scale != 0,
	}

	g := bitmap.NewGrid(rep.Cols, rep.Rows)
	for y := 0; y < rep.Rows; y++ {
		for x := 0; x < rep.Cols; x++ {
			px := bounds.Min.X + x*s.Scale + s.Scale/2
			py := bounds.Min.Y + y*s.Scale + s.Scale/2
			g.Cells[y][x] = s.on(img.At(px, py))
		}
	}

	return g, rep, nil
}

// on classifies a sample by mean brightness of R, G and B. Alpha is
// ignored: the sample is read through NRGBAModel so translucent pixels
// classify by their straight channel values rather than premultiplied
// ones. The strict mean > Threshold comparison is done on the channel
// sum so the 128/129 boundary is exact.
func (s *Sampler) on(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	sum := int(n.R) + int(n.G) + int(n.B)
	return sum > 3*s.Threshold
}
