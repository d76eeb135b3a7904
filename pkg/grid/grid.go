// Package grid provides a dense two-dimensional occupancy matrix.
//
// A [Grid] stores at most one occupant per cell. Occupants are placed a whole
// rectangle at a time with [Grid.Fill]; every cell of the rectangle then holds
// the same occupant value, so callers that store pointers observe rect-wide
// identity. Fills never overwrite: a fill that touches an occupied cell fails
// without modifying the grid.
//
// Grids only grow. [Grid.Expand] appends empty rows and columns and never
// touches existing cells, which keeps every previously returned coordinate
// valid for the lifetime of the grid.
//
// Grid is not safe for concurrent use without external synchronization.
package grid

import (
	"errors"
	"fmt"

	"github.com/matzehuels/focusgrid/pkg/geom"
)

var (
	// ErrInvalidSize is returned by [New] when a dimension is not positive.
	ErrInvalidSize = errors.New("grid dimensions must be positive")

	// ErrOutOfBounds is returned when a coordinate or rect lies outside the grid.
	ErrOutOfBounds = errors.New("out of grid bounds")

	// ErrOverlap is returned by [Grid.Fill] when the target rect contains an
	// occupied cell.
	ErrOverlap = errors.New("rect overlaps an occupied cell")

	// ErrShrink is returned by [Grid.Expand] when a requested dimension is
	// smaller than the current one.
	ErrShrink = errors.New("grid cannot shrink")
)

type slot[T any] struct {
	value T
	ok    bool
}

// Grid is a dense matrix of optional occupants indexed as [x][y].
type Grid[T any] struct {
	xSize, ySize int
	cells        [][]slot[T] // cells[x][y]
}

// New creates an empty grid. It returns ErrInvalidSize when either dimension
// is zero or negative.
func New[T any](xSize, ySize int) (*Grid[T], error) {
	if xSize <= 0 || ySize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, xSize, ySize)
	}
	g := &Grid[T]{xSize: xSize, ySize: ySize, cells: make([][]slot[T], xSize)}
	for x := range g.cells {
		g.cells[x] = make([]slot[T], ySize)
	}
	return g, nil
}

// Size returns the current dimensions.
func (g *Grid[T]) Size() (x, y int) { return g.xSize, g.ySize }

// WithinBounds reports whether (x, y) addresses a cell. Negative coordinates
// are accepted and reported as out of bounds.
func (g *Grid[T]) WithinBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.xSize && y < g.ySize
}

// Contains reports whether p addresses a cell.
func (g *Grid[T]) Contains(p geom.Point) bool { return g.WithinBounds(p.X, p.Y) }

// ContainsRect reports whether every cell of r lies inside the grid.
func (g *Grid[T]) ContainsRect(r geom.Rect) bool {
	return g.Contains(r.TopLeft()) && g.Contains(r.BottomRight())
}

// Bounds returns the rect covering the whole grid.
func (g *Grid[T]) Bounds() geom.Rect {
	return geom.Rect{XStart: 0, XEnd: g.xSize - 1, YStart: 0, YEnd: g.ySize - 1}
}

// Fill places v in every cell of r. It fails with ErrOutOfBounds if r does
// not fit and with ErrOverlap if any cell is already occupied; in both cases
// the grid is left untouched.
func (g *Grid[T]) Fill(r geom.Rect, v T) error {
	if !g.ContainsRect(r) {
		return fmt.Errorf("fill %v in %dx%d grid: %w", r, g.xSize, g.ySize, ErrOutOfBounds)
	}
	for x := r.XStart; x <= r.XEnd; x++ {
		for y := r.YStart; y <= r.YEnd; y++ {
			if g.cells[x][y].ok {
				return fmt.Errorf("fill %v at (%d,%d): %w", r, x, y, ErrOverlap)
			}
		}
	}
	for x := r.XStart; x <= r.XEnd; x++ {
		for y := r.YStart; y <= r.YEnd; y++ {
			g.cells[x][y] = slot[T]{value: v, ok: true}
		}
	}
	return nil
}

// At returns the occupant at (x, y) and whether the cell is occupied. It
// returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid[T]) At(x, y int) (T, bool, error) {
	if !g.WithinBounds(x, y) {
		var zero T
		return zero, false, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, g.xSize, g.ySize, ErrOutOfBounds)
	}
	s := g.cells[x][y]
	return s.value, s.ok, nil
}

// Lookup is At for a point that the caller has already bounds-checked. It
// reports false for empty and out-of-bounds cells alike.
func (g *Grid[T]) Lookup(p geom.Point) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	s := g.cells[p.X][p.Y]
	return s.value, s.ok
}

// Expand grows the grid to newX by newY, appending empty cells. Existing
// cells keep their contents and coordinates. It returns ErrShrink if either
// new dimension is smaller than the current one.
func (g *Grid[T]) Expand(newX, newY int) error {
	if newX < g.xSize || newY < g.ySize {
		return fmt.Errorf("expand %dx%d to %dx%d: %w", g.xSize, g.ySize, newX, newY, ErrShrink)
	}
	for x := range g.cells {
		if extra := newY - g.ySize; extra > 0 {
			g.cells[x] = append(g.cells[x], make([]slot[T], extra)...)
		}
	}
	for x := g.xSize; x < newX; x++ {
		g.cells = append(g.cells, make([]slot[T], newY))
	}
	g.xSize, g.ySize = newX, newY
	return nil
}

// Each calls fn for every occupied cell in column-major order (x outer, y
// inner). Iteration stops early when fn returns false.
func (g *Grid[T]) Each(fn func(p geom.Point, v T) bool) {
	for x := 0; x < g.xSize; x++ {
		for y := 0; y < g.ySize; y++ {
			if s := g.cells[x][y]; s.ok {
				if !fn(geom.Point{X: x, Y: y}, s.value) {
					return
				}
			}
		}
	}
}
