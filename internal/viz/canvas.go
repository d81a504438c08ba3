// Package viz renders density and gradient curves on a Braille pixel canvas
// for terminal display.
package viz

import (
	"fmt"
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille-cell pixel grid. Each cell packs 2x4 sub-pixels, so a
// Width x Height canvas resolves (Width*2) x (Height*4) points.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Curve is a sampled function over an x range, ready to draw.
type Curve struct {
	Xs, Ys []float64
	Label  string
}

// Sample evaluates f at n evenly spaced points of [from, to], skipping
// non-finite values.
func Sample(f func(float64) (float64, error), from, to float64, n int) Curve {
	if n < 2 {
		n = 2
	}
	step := (to - from) / float64(n-1)
	cv := Curve{Xs: make([]float64, 0, n), Ys: make([]float64, 0, n)}
	for i := 0; i < n; i++ {
		x := from + float64(i)*step
		y, err := f(x)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		cv.Xs = append(cv.Xs, x)
		cv.Ys = append(cv.Ys, y)
	}
	return cv
}

// Draw renders the curve onto a fresh canvas with the y range annotated.
func Draw(cv Curve, width, height int) string {
	if len(cv.Xs) == 0 {
		return "(no finite values in range)\n"
	}
	c := NewCanvas(width, height)
	px, py := width*2, height*4

	minX, maxX := cv.Xs[0], cv.Xs[len(cv.Xs)-1]
	minY, maxY := cv.Ys[0], cv.Ys[0]
	for _, y := range cv.Ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	if maxY == minY {
		maxY = minY + 1
	}
	if maxX == minX {
		maxX = minX + 1
	}

	var prevX, prevY int
	for i := range cv.Xs {
		x := int(math.Round((cv.Xs[i] - minX) / (maxX - minX) * float64(px-1)))
		y := (py - 1) - int(math.Round((cv.Ys[i]-minY)/(maxY-minY)*float64(py-1)))
		if i > 0 {
			drawLine(c, prevX, prevY, x, y)
		} else {
			c.Set(x, y)
		}
		prevX, prevY = x, y
	}

	var b strings.Builder
	if cv.Label != "" {
		b.WriteString(cv.Label + "\n")
	}
	b.WriteString(c.String())
	fmt.Fprintf(&b, "x: [%.3g, %.3g]  y: [%.3g, %.3g]\n", minX, maxX, minY, maxY)
	return b.String()
}

// drawLine draws a line using Bresenham's algorithm
func drawLine(c *Canvas, x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
