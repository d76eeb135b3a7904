package nav

import (
	"errors"
	"fmt"

	"github.com/matzehuels/focusgrid/pkg/geom"
)

// Navigate applies d to node id.
//
// Moves and button presses may recurse into children and parents of id; the
// returned Result names the node that ends up holding focus. NoNextItem is
// returned with a nil error when nothing lies in the requested direction. An
// error means the tree is inconsistent (see [IsInvariantViolation]) or that
// the directive is malformed.
func (t *Tree) Navigate(id NodeID, d Directive) (Result, error) {
	n, err := t.node(id)
	if err != nil {
		return noNextItem, err
	}
	switch d.Kind {
	case KindNoop:
		return t.current(id, n)
	case KindButton:
		action, ok := n.buttons[d.Button]
		if !ok {
			return t.current(id, n)
		}
		anchor, dir := n.edgeAnchor(action)
		return t.scan(id, anchor, dir)
	case KindMove:
		if d.Direction < Up || d.Direction > Right {
			return noNextItem, fmt.Errorf("%w: %v", ErrInvalidDirective, d.Direction)
		}
		anchor, err := n.anchor(d.Direction)
		if err != nil {
			return noNextItem, err
		}
		return t.scan(id, anchor, d.Direction)
	}
	return noNextItem, fmt.Errorf("%w: kind %d", ErrInvalidDirective, d.Kind)
}

func (t *Tree) current(id NodeID, n *node) (Result, error) {
	e, err := n.currentElement()
	if err != nil {
		return noNextItem, err
	}
	return within(e.FocusID, id), nil
}

// anchor returns the cell a move in dir starts from: the corner of the
// focused element facing dir, or the raw focus point when it does not
// address an element.
func (n *node) anchor(dir Direction) (geom.Point, error) {
	e, err := n.currentElement()
	switch {
	case err == nil:
		if dir == Up || dir == Left {
			return e.Rect.TopLeft(), nil
		}
		return e.Rect.BottomRight(), nil
	case errors.Is(err, ErrNoFocus):
		return geom.Point{}, err
	default:
		return n.focus, nil
	}
}

// edgeAnchor returns a virtual anchor just outside the top row and the scan
// direction that brings it back across the grid.
func (n *node) edgeAnchor(a ButtonAction) (geom.Point, Direction) {
	x, _ := n.grid.Size()
	if a == JumpLeftEdge {
		return geom.Point{X: -1}, Right
	}
	return geom.Point{X: x}, Left
}

// scan moves from anchor in dir. A first step out of the grid exits to the
// parent. Otherwise the primary line is walked until an occupant resolves,
// then the same line is walked again probing both perpendicular sides.
func (t *Tree) scan(id NodeID, anchor geom.Point, dir Direction) (Result, error) {
	n := t.nodes[id]
	v := dir.Vector()
	start := anchor.Step(v)
	if !n.grid.Contains(start) {
		return t.exit(id, anchor, dir)
	}

	for p := start; n.grid.Contains(p); p = p.Step(v) {
		res, hit, err := t.resolve(id, p, dir)
		if err != nil || hit {
			return res, err
		}
	}

	for p := start; n.grid.Contains(p); p = p.Step(v) {
		for _, side := range dir.Sides() {
			if res, ok := t.probeSide(id, p, side); ok {
				return res, nil
			}
		}
	}
	return noNextItem, nil
}

// probeSide walks from p along side. Only elements are accepted; the probe
// gives up at the first Sublayout cell.
func (t *Tree) probeSide(id NodeID, p geom.Point, side geom.Vector) (Result, bool) {
	n := t.nodes[id]
	for q := p.Step(side); n.grid.Contains(q); q = q.Step(side) {
		o, ok := n.grid.Lookup(q)
		if !ok {
			continue
		}
		e, ok := AsElement(o)
		if !ok {
			return noNextItem, false
		}
		n.focus, n.hasFocus = q, true
		return within(e.FocusID, id), true
	}
	return noNextItem, false
}

// resolve handles the occupant at p. hit is false only for empty cells.
func (t *Tree) resolve(id NodeID, p geom.Point, dir Direction) (res Result, hit bool, err error) {
	o, ok := t.nodes[id].grid.Lookup(p)
	if !ok {
		return noNextItem, false, nil
	}
	r := resolver{t: t, id: id, at: p, dir: dir}
	o.Accept(&r)
	return r.res, true, r.err
}

type resolver struct {
	t   *Tree
	id  NodeID
	at  geom.Point
	dir Direction
	res Result
	err error
}

func (r *resolver) VisitElement(e *Element) {
	n := r.t.nodes[r.id]
	n.focus, n.hasFocus = r.at, true
	r.res = within(e.FocusID, r.id)
}

func (r *resolver) VisitSublayout(s *Sublayout) {
	res, err := r.t.enter(s, geom.PositionIn(s.Rect, r.at), r.dir)
	if err != nil {
		r.res, r.err = noNextItem, fmt.Errorf("enter %q: %w", s.LayoutID, err)
		return
	}
	r.res = across(res)
}
