package nav

import (
	"fmt"

	"github.com/matzehuels/focusgrid/pkg/geom"
)

// enter continues a move inside the child embedded by s. pos is where the
// move reached s, normalized over the rect; the child maps it onto its own
// grid, resolves that cell, and scans on from there when it is empty.
func (t *Tree) enter(s *Sublayout, pos geom.Position, dir Direction) (Result, error) {
	child, err := t.node(s.Node)
	if err != nil {
		return noNextItem, err
	}
	if child.layoutID != s.LayoutID {
		return noNextItem, fmt.Errorf("node %d is %q, not %q: %w", s.Node, child.layoutID, s.LayoutID, ErrDanglingReference)
	}
	x, y := child.grid.Size()
	p := geom.Point{X: pos.X.Scale(x), Y: pos.Y.Scale(y)}
	child.focus, child.hasFocus = p, true

	res, hit, err := t.resolve(s.Node, p, dir)
	if err != nil || hit {
		return res, err
	}
	return t.scan(s.Node, p, dir)
}

// exit hands a move that left node id at anchor to its parent. The root has
// nowhere to go and reports NoNextItem.
func (t *Tree) exit(id NodeID, anchor geom.Point, dir Direction) (Result, error) {
	n := t.nodes[id]
	if n.parent == NoNode {
		return noNextItem, nil
	}
	pos := geom.PositionIn(n.grid.Bounds(), anchor)
	res, err := t.enterFromChild(n.parent, n.layoutID, id, pos, dir)
	if err != nil {
		return noNextItem, fmt.Errorf("exit %q: %w", n.layoutID, err)
	}
	return across(res), nil
}

// enterFromChild resumes a move in parent after it left the child registered
// as layoutID. The exit position is mapped into the child's rect and
// projected onto the rect edge facing dir, so the parent's scan starts on
// the far side of the child rather than inside it.
func (t *Tree) enterFromChild(parent NodeID, layoutID string, child NodeID, pos geom.Position, dir Direction) (Result, error) {
	p, err := t.node(parent)
	if err != nil {
		return noNextItem, err
	}
	s, ok := p.children[layoutID]
	if !ok {
		// The child index disagrees with the child's own record of its parent.
		return noNextItem, fmt.Errorf("%q in %q: %w: %w", layoutID, p.layoutID, ErrDanglingReference, ErrUnknownLayout)
	}
	if s.Node != child {
		return noNextItem, fmt.Errorf("%q in %q points at node %d, not %d: %w", layoutID, p.layoutID, s.Node, child, ErrDanglingReference)
	}

	at := pos.PointIn(s.Rect)
	switch dir {
	case Up:
		at.Y = s.Rect.YStart
	case Down:
		at.Y = s.Rect.YEnd
	case Left:
		at.X = s.Rect.XStart
	case Right:
		at.X = s.Rect.XEnd
	}
	return t.scan(parent, at, dir)
}
