package iconkit

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// RenderSVG draws the same layout as Render, but as vector rectangles, and
// writes it out as an SVG. Handy when the icon needs to scale past the raster
// sizes. The exact-pixel guarantees only apply to the raster path.
func RenderSVG(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("icon size must be positive, got %d", size)
	}
	g := ComputeGeometry(size)
	c := canvas.New(float64(size), float64(size))
	ctx := canvas.NewContext(c)

	// The canvas origin is bottom-left with y pointing up, so every raster
	// rectangle gets its y flipped.
	rect := func(x, y, w, h int) {
		ctx.DrawPath(float64(x), float64(size-y-h), canvas.Rectangle(float64(w), float64(h)))
	}

	ctx.SetFillColor(Background)
	rect(0, 0, size, size)

	ctx.SetFillColor(FlagWhite)
	for row := 0; row < FlagRows; row++ {
		for col := 0; col < FlagCols; col++ {
			if !CellPainted(row, col) {
				continue
			}
			rect(g.FlagX+col*g.SquareSize, g.FlagY+row*g.SquareSize, g.SquareSize, g.SquareSize)
		}
	}

	ctx.SetFillColor(PoleGray)
	rect(g.PoleX, g.PoleY, g.PoleWidth, g.PoleHeight)

	ctx.SetFillColor(shadowTone)
	rect(g.PoleX+g.PoleWidth, g.PoleY+g.ShadowOffset, g.ShadowOffset, g.PoleHeight-g.ShadowOffset)

	svgWriter := renderers.SVG()
	return svgWriter(w, c)
}
