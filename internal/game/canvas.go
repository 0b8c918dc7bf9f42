package game

const (
	DefaultCanvasWidth  = 12
	DefaultCanvasHeight = 12
)

// Canvas is a fixed-size pixel grid. Grid holds Width*Height cells at all
// times, row by row.
type Canvas struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Grid   []Color `json:"grid"`
}

func NewCanvas(width, height int) Canvas {
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	grid := make([]Color, width*height)
	for i := range grid {
		grid[i] = DefaultColor
	}
	return Canvas{Width: width, Height: height, Grid: grid}
}

// SetPixel overwrites one cell. The index must already be range-checked by
// the caller; an out-of-range index is a bug and panics.
func (c *Canvas) SetPixel(i int, color Color) {
	c.Grid[i] = color
}

// Clear resets every cell to the default color.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		c.Grid[i] = DefaultColor
	}
}

// Clone returns an independent copy of the canvas.
func (c Canvas) Clone() Canvas {
	grid := make([]Color, len(c.Grid))
	copy(grid, c.Grid)
	return Canvas{Width: c.Width, Height: c.Height, Grid: grid}
}
