package geom

import "fmt"

// Fraction is an exact position along one axis in [0, 1], stored as a
// rational so that mapping between grids of different sizes never suffers
// from floating point drift at the boundaries.
//
// Positions are normalized over the inclusive index range: offset k out of an
// extent of n cells is k/(n-1). Single-cell extents always produce 0.
type Fraction struct {
	Num, Den int
}

// FractionOf returns the normalized position of offset within an extent of
// the given number of cells. Offsets outside [0, extent) are clamped.
func FractionOf(offset, extent int) Fraction {
	if extent <= 1 {
		return Fraction{Num: 0, Den: 1}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > extent-1 {
		offset = extent - 1
	}
	return Fraction{Num: offset, Den: extent - 1}
}

// Scale maps the fraction onto an extent of the given number of cells and
// returns the resulting offset, rounding toward the start. Fraction 1 maps to
// the last cell exactly.
func (f Fraction) Scale(extent int) int {
	if extent <= 1 || f.Den == 0 || f.Num <= 0 {
		return 0
	}
	if f.Num >= f.Den {
		return extent - 1
	}
	return f.Num * (extent - 1) / f.Den
}

// Float returns the fraction as a float64, for display only.
func (f Fraction) Float() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string { return fmt.Sprintf("%d/%d", f.Num, f.Den) }

// Position is a pair of per-axis fractions describing where a crossing
// happened relative to a rect or grid.
type Position struct {
	X, Y Fraction
}

// PositionIn returns the normalized position of p inside r.
func PositionIn(r Rect, p Point) Position {
	return Position{
		X: FractionOf(p.X-r.XStart, r.Width()),
		Y: FractionOf(p.Y-r.YStart, r.Height()),
	}
}

// PointIn maps a normalized position back into r.
func (pos Position) PointIn(r Rect) Point {
	return Point{
		X: r.XStart + pos.X.Scale(r.Width()),
		Y: r.YStart + pos.Y.Scale(r.Height()),
	}
}
