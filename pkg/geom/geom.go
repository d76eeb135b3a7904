// Package geom provides the integer geometry shared by the occupancy grid and
// the navigation engine.
//
// Coordinates follow screen conventions: X grows to the right and Y grows
// downward, with (0, 0) at the top-left cell. All rectangles are inclusive on
// both ends, so a Rect covering a single cell has XStart == XEnd and
// YStart == YEnd.
package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRect is returned by [NewRect] when an end coordinate is
	// smaller than its start coordinate.
	ErrInvalidRect = errors.New("rect end must not precede start")

	// ErrNegativeCoordinate is returned by [NewRect] when a start coordinate
	// is negative. Rects always live inside a grid's index space.
	ErrNegativeCoordinate = errors.New("rect coordinates must not be negative")
)

// Point is a cell coordinate. Points may step outside a grid while a scan is
// in progress; callers bounds-check before reading a cell.
type Point struct {
	X, Y int
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Step returns the point offset by v.
func (p Point) Step(v Vector) Point { return p.Add(v.DX, v.DY) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Vector is a unit step along one axis.
type Vector struct {
	DX, DY int
}

// Rect is an inclusive, axis-aligned rectangle of cells. The zero value is
// the single cell at the origin. Rects are immutable once constructed.
type Rect struct {
	XStart, XEnd int
	YStart, YEnd int
}

// NewRect validates and returns an inclusive rectangle. It returns
// ErrInvalidRect if either end precedes its start and ErrNegativeCoordinate
// if a start is negative.
func NewRect(xStart, xEnd, yStart, yEnd int) (Rect, error) {
	if xEnd < xStart || yEnd < yStart {
		return Rect{}, fmt.Errorf("%w: x %d..%d, y %d..%d", ErrInvalidRect, xStart, xEnd, yStart, yEnd)
	}
	if xStart < 0 || yStart < 0 {
		return Rect{}, fmt.Errorf("%w: start (%d,%d)", ErrNegativeCoordinate, xStart, yStart)
	}
	return Rect{XStart: xStart, XEnd: xEnd, YStart: yStart, YEnd: yEnd}, nil
}

// MustRect is like NewRect but panics on invalid input. It is intended for
// static layouts declared in code.
func MustRect(xStart, xEnd, yStart, yEnd int) Rect {
	r, err := NewRect(xStart, xEnd, yStart, yEnd)
	if err != nil {
		panic(err)
	}
	return r
}

// Width returns the number of columns the rect covers.
func (r Rect) Width() int { return r.XEnd - r.XStart + 1 }

// Height returns the number of rows the rect covers.
func (r Rect) Height() int { return r.YEnd - r.YStart + 1 }

// TopLeft returns the corner with the smallest coordinates.
func (r Rect) TopLeft() Point { return Point{X: r.XStart, Y: r.YStart} }

// TopRight returns the upper corner on the XEnd side.
func (r Rect) TopRight() Point { return Point{X: r.XEnd, Y: r.YStart} }

// BottomLeft returns the lower corner on the XStart side.
func (r Rect) BottomLeft() Point { return Point{X: r.XStart, Y: r.YEnd} }

// BottomRight returns the corner with the largest coordinates.
func (r Rect) BottomRight() Point { return Point{X: r.XEnd, Y: r.YEnd} }

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XStart && p.X <= r.XEnd && p.Y >= r.YStart && p.Y <= r.YEnd
}

// Overlaps reports whether the two rects share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.XStart <= o.XEnd && o.XStart <= r.XEnd && r.YStart <= o.YEnd && o.YStart <= r.YEnd
}

func (r Rect) String() string {
	return fmt.Sprintf("[x %d..%d, y %d..%d]", r.XStart, r.XEnd, r.YStart, r.YEnd)
}
