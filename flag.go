package iconkit

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// The icon's palette. Material blue for the background (racing theme), white
// checkerboard, dark gray pole.
var (
	Background = color.RGBA{R: 33, G: 150, B: 243, A: 255}
	FlagWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PoleGray   = color.RGBA{R: 60, G: 60, B: 60, A: 255}

	// The shadow is a 40/255-alpha black strip composited over whatever is
	// underneath it. An RGBA canvas handles that directly, so there's no need
	// to approximate it with flat black.
	shadowTone = color.RGBA{R: 0, G: 0, B: 0, A: 40}
)

// Render paints the checkered-flag icon onto a fresh size x size canvas.
// Pure: same size in, same pixels out, no I/O.
func Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}
	g := ComputeGeometry(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	fill(img, img.Bounds(), Background, draw.Src)

	for row := 0; row < FlagRows; row++ {
		for col := 0; col < FlagCols; col++ {
			if !CellPainted(row, col) {
				continue
			}
			x := g.FlagX + col*g.SquareSize
			y := g.FlagY + row*g.SquareSize
			fill(img, image.Rect(x, y, x+g.SquareSize, y+g.SquareSize), FlagWhite, draw.Src)
		}
	}

	fill(img, image.Rect(g.PoleX, g.PoleY, g.PoleX+g.PoleWidth, g.PoleY+g.PoleHeight), PoleGray, draw.Src)

	// Depth accent along the right edge of the pole, starting a little below
	// its top.
	shadow := image.Rect(
		g.PoleX+g.PoleWidth,
		g.PoleY+g.ShadowOffset,
		g.PoleX+g.PoleWidth+g.ShadowOffset,
		g.PoleY+g.PoleHeight,
	)
	fill(img, shadow, shadowTone, draw.Over)

	return img, nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color, op draw.Op) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, op)
}
