package iconkit

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCanvasSize(t *testing.T) {
	for _, size := range []int{1, 20, 100, 1024} {
		img, err := Render(size)
		assert.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, size, size), img.Bounds())
	}
}

func TestRenderRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -1024} {
		_, err := Render(size)
		assert.Error(t, err, "size=%d", size)
	}
}

func TestBackgroundColor(t *testing.T) {
	img, err := Render(1024)
	if err != nil {
		t.Fatal(err)
	}
	// Corners are far from the flag, pole and shadow.
	for _, p := range []image.Point{{0, 0}, {1023, 0}, {0, 1023}, {1023, 1023}} {
		assert.Equal(t, Background, img.RGBAAt(p.X, p.Y), "at %v", p)
	}
}

// Checks the center pixel of every checkerboard cell: even row+col is white,
// odd shows the background through.
func TestCheckerboardParity(t *testing.T) {
	for _, size := range []int{100, 1024} {
		img, err := Render(size)
		if err != nil {
			t.Fatal(err)
		}
		g := ComputeGeometry(size)
		for row := 0; row < FlagRows; row++ {
			for col := 0; col < FlagCols; col++ {
				x := g.FlagX + col*g.SquareSize + g.SquareSize/2
				y := g.FlagY + row*g.SquareSize + g.SquareSize/2
				got := img.RGBAAt(x, y)
				if CellPainted(row, col) {
					assert.Equal(t, FlagWhite, got, "size=%d cell (%d,%d)", size, row, col)
				} else {
					assert.Equal(t, Background, got, "size=%d cell (%d,%d)", size, row, col)
				}
			}
		}
	}
}

func TestPolePlacement(t *testing.T) {
	img, err := Render(1024)
	if err != nil {
		t.Fatal(err)
	}
	g := ComputeGeometry(1024)
	assert.Equal(t, PoleGray, img.RGBAAt(g.PoleX, g.PoleY))
	assert.Equal(t, PoleGray, img.RGBAAt(g.PoleX+g.PoleWidth-1, g.PoleY+g.PoleHeight-1))
	// Flush against the flag: the first flag column starts where the pole ends.
	assert.Equal(t, g.FlagX, g.PoleX+g.PoleWidth)
	// One pixel left of the pole is plain background.
	assert.Equal(t, Background, img.RGBAAt(g.PoleX-1, g.PoleY))
}

func TestShadowDarkensBackground(t *testing.T) {
	img, err := Render(1024)
	if err != nil {
		t.Fatal(err)
	}
	g := ComputeGeometry(1024)
	// A point in the shadow strip below the flag, where the background shows
	// underneath.
	got := img.RGBAAt(g.PoleX+g.PoleWidth, g.PoleY+g.PoleHeight-1)
	assert.Less(t, got.R, Background.R)
	assert.Less(t, got.G, Background.G)
	assert.Less(t, got.B, Background.B)
	assert.Greater(t, got.B, uint8(0), "shadow should be a tint, not flat black")
	assert.Equal(t, uint8(255), got.A)
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render(256)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(256)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, a.Pix, b.Pix)
}
