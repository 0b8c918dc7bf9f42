package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas(0, 0)
	assert.Equal(t, DefaultCanvasWidth, c.Width)
	assert.Equal(t, DefaultCanvasHeight, c.Height)
	require.Len(t, c.Grid, c.Width*c.Height)
	for _, cell := range c.Grid {
		assert.Equal(t, DefaultColor, cell)
	}
}

func TestSetPixelAndClear(t *testing.T) {
	c := NewCanvas(3, 2)
	require.Len(t, c.Grid, 6)

	c.SetPixel(0, Black)
	c.SetPixel(5, Magenta)
	assert.Equal(t, Black, c.Grid[0])
	assert.Equal(t, Magenta, c.Grid[5])

	c.Clear()
	for _, cell := range c.Grid {
		assert.Equal(t, DefaultColor, cell)
	}
	assert.Len(t, c.Grid, 6, "clear must preserve the grid length")
}

func TestSetPixelOutOfRangePanics(t *testing.T) {
	c := NewCanvas(2, 2)
	assert.Panics(t, func() { c.SetPixel(4, Red) })
	assert.Panics(t, func() { c.SetPixel(-1, Red) })
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCanvas(2, 2)
	clone := c.Clone()
	c.SetPixel(0, Blue)
	assert.Equal(t, DefaultColor, clone.Grid[0])
}

func TestCanvasJSONRoundTrip(t *testing.T) {
	c := NewCanvas(3, 3)
	c.SetPixel(4, Cyan)
	c.SetPixel(8, Black)

	blob, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"Cyan"`, "colors serialize by name")

	var back Canvas
	require.NoError(t, json.Unmarshal(blob, &back))
	assert.Equal(t, c, back)
}

func TestColorValid(t *testing.T) {
	assert.Len(t, Palette, 12)
	for _, c := range Palette {
		assert.True(t, c.Valid())
	}
	assert.False(t, Color("Mauve").Valid())
	assert.False(t, Color("").Valid())
}
