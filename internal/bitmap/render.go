package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Render upscales the grid back to a raster image: each cell becomes a
// scale x scale flat-filled block, white for on and black for off.
// This is the inverse of the block sampler and produces the same kind
// of imagery the test suite screenshots contain.
func Render(g *Grid, scale int) *image.RGBA {
	base := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if g.Cells[y][x] {
				c = color.RGBA{255, 255, 255, 255}
			}
			base.SetRGBA(x, y, c)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, g.Cols*scale, g.Rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)
	return dst
}
