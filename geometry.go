package iconkit

// All of the icon's measurements are fixed proportions of the overall size.
// The proportions are expressed as integer ratios (35/100 instead of 0.35) so
// that the truncation is exact: int(float64(100)*0.35) can come out as 34 or
// 35 depending on how the float rounding goes, and we want the same layout
// every time.
type Geometry struct {
	Size int

	// Bounding box of the checkered flag, horizontally centered in the
	// upper-middle of the canvas.
	FlagWidth  int
	FlagHeight int
	FlagX      int
	FlagY      int

	// Side length of one checkerboard cell (the flag is a 3x5 grid of these).
	SquareSize int

	// The pole sits flush against the left edge of the flag.
	PoleWidth  int
	PoleHeight int
	PoleX      int
	PoleY      int

	// Width of the thin shadow strip to the right of the pole. Also used as
	// the shadow's top inset.
	ShadowOffset int
}

// Checkerboard grid dimensions.
const (
	FlagRows = 3
	FlagCols = 5
)

func ComputeGeometry(size int) Geometry {
	g := Geometry{Size: size}
	g.FlagWidth = size * 50 / 100
	g.FlagHeight = size * 35 / 100
	g.SquareSize = g.FlagWidth / FlagCols
	g.FlagX = (size - g.FlagWidth) / 2
	g.FlagY = size * 25 / 100
	g.PoleWidth = size * 3 / 100
	g.PoleHeight = size * 50 / 100
	g.PoleX = g.FlagX - g.PoleWidth
	g.PoleY = g.FlagY
	g.ShadowOffset = size * 15 / 1000
	return g
}

// CellPainted reports whether the checkerboard cell at (row, col) gets the
// white fill. Cells with an even row+col are painted; the rest show the
// background through.
func CellPainted(row, col int) bool {
	return (row+col)%2 == 0
}
