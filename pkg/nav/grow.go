package nav

import (
	"fmt"
	"strings"

	"github.com/matzehuels/focusgrid/pkg/geom"
)

// GrowAxis is the axis along which a growable layout appends items.
type GrowAxis int

const (
	// GrowX fills rows left to right and adds rows at the bottom.
	GrowX GrowAxis = iota
	// GrowY fills columns top to bottom and adds columns on the right.
	GrowY
)

func (a GrowAxis) String() string {
	if a == GrowY {
		return "y"
	}
	return "x"
}

// ParseGrowAxis accepts "x" or "y".
func ParseGrowAxis(s string) (GrowAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "":
		return GrowX, nil
	case "y":
		return GrowY, nil
	}
	return GrowX, fmt.Errorf("%w: unknown axis %q", ErrInvalidGrow, s)
}

type growConfig struct {
	itemX, itemY int
	axis         GrowAxis
	cursor       geom.Point
}

func (g *growConfig) slot(at geom.Point) geom.Rect {
	return geom.Rect{XStart: at.X, XEnd: at.X + g.itemX - 1, YStart: at.Y, YEnd: at.Y + g.itemY - 1}
}

// wrap moves the cursor to the start of the next band.
func (g *growConfig) wrap() {
	if g.axis == GrowX {
		g.cursor = geom.Point{X: 0, Y: g.cursor.Y + g.itemY}
		return
	}
	g.cursor = geom.Point{X: g.cursor.X + g.itemX, Y: 0}
}

func (g *growConfig) advance(placed geom.Rect) {
	if g.axis == GrowX {
		g.cursor = geom.Point{X: placed.XEnd + 1, Y: placed.YStart}
		return
	}
	g.cursor = geom.Point{X: placed.XStart, Y: placed.YEnd + 1}
}

// GrowSpec is the public view of a node's grow configuration.
type GrowSpec struct {
	ItemX, ItemY int
	Axis         GrowAxis
}

// Grow returns the grow configuration of id, if it is growable.
func (t *Tree) Grow(id NodeID) (GrowSpec, bool) {
	g := t.mustNode(id).grow
	if g == nil {
		return GrowSpec{}, false
	}
	return GrowSpec{ItemX: g.itemX, ItemY: g.itemY, Axis: g.axis}, true
}

// Insertion describes a completed [Tree.Insert].
type Insertion struct {
	Rect geom.Rect
	// Expanded is set when the grid grew by one band to make room.
	Expanded bool
}

// Insert appends an element with focusID to the growable node id.
//
// The item is placed at the cursor. When it does not fit, the cursor wraps to
// the next band; when the band lies beyond the grid, the grid expands by one
// item size perpendicular to the growth axis. Existing occupants keep their
// cells, so the focus point of id stays valid.
func (t *Tree) Insert(id NodeID, focusID string) (Insertion, error) {
	n, err := t.node(id)
	if err != nil {
		return Insertion{}, err
	}
	g := n.grow
	if g == nil {
		return Insertion{}, fmt.Errorf("%q: %w", n.layoutID, ErrNotGrowable)
	}

	var ins Insertion
	r := g.slot(g.cursor)
	if !n.grid.ContainsRect(r) {
		g.wrap()
		r = g.slot(g.cursor)
		if !n.grid.ContainsRect(r) {
			x, y := n.grid.Size()
			if g.axis == GrowX {
				y += g.itemY
			} else {
				x += g.itemX
			}
			if err := n.grid.Expand(x, y); err != nil {
				return Insertion{}, fmt.Errorf("%q: %w", n.layoutID, err)
			}
			ins.Expanded = true
			if !n.grid.ContainsRect(r) {
				return ins, fmt.Errorf("%q: slot %v outside %dx%d: %w", n.layoutID, r, x, y, ErrInvalidInsert)
			}
		}
	}

	if err := n.grid.Fill(r, &Element{FocusID: focusID, Rect: r}); err != nil {
		return ins, fmt.Errorf("%q: %w: %w", n.layoutID, ErrInvalidInsert, err)
	}
	g.advance(r)
	ins.Rect = r
	return ins, nil
}
