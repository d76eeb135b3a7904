package nav

import (
	"fmt"
	"slices"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/grid"
)

// Tree is the arena holding every layout node. Node 0 is the root.
//
// Tree is not safe for concurrent use; see [Navigator].
type Tree struct {
	nodes []*node
}

type node struct {
	layoutID string
	grid     *grid.Grid[Occupant]
	focus    geom.Point
	hasFocus bool
	buttons  map[Button]ButtonAction
	parent   NodeID
	children map[string]*Sublayout
	grow     *growConfig
}

// Root returns the root node.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) node(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("node %d of %d: %w", id, len(t.nodes), ErrDanglingReference)
	}
	return t.nodes[id], nil
}

func (t *Tree) mustNode(id NodeID) *node {
	n, err := t.node(id)
	if err != nil {
		panic(err)
	}
	return n
}

// LayoutID returns the identifier of node id. It panics for ids not returned
// by this tree.
func (t *Tree) LayoutID(id NodeID) string { return t.mustNode(id).layoutID }

// Parent returns the parent of id, or NoNode and false for the root.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p := t.mustNode(id).parent
	return p, p != NoNode
}

// Size returns the current grid dimensions of id.
func (t *Tree) Size(id NodeID) (x, y int) { return t.mustNode(id).grid.Size() }

// Growable reports whether id accepts [Tree.Insert].
func (t *Tree) Growable(id NodeID) bool { return t.mustNode(id).grow != nil }

// Buttons returns a copy of the button bindings of id.
func (t *Tree) Buttons(id NodeID) map[Button]ButtonAction {
	n := t.mustNode(id)
	out := make(map[Button]ButtonAction, len(n.buttons))
	for b, a := range n.buttons {
		out[b] = a
	}
	return out
}

// Focus returns the focus point of id, if one has been set.
func (t *Tree) Focus(id NodeID) (geom.Point, bool) {
	n := t.mustNode(id)
	return n.focus, n.hasFocus
}

// SetFocus moves the focus point of id without navigating. The point must lie
// inside the grid but need not address an Element; a subsequent move scans
// from the raw point in that case.
func (t *Tree) SetFocus(id NodeID, p geom.Point) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if !n.grid.Contains(p) {
		x, y := n.grid.Size()
		return fmt.Errorf("focus %v in %q (%dx%d): %w", p, n.layoutID, x, y, grid.ErrOutOfBounds)
	}
	n.focus, n.hasFocus = p, true
	return nil
}

// At returns the occupant at p in node id.
func (t *Tree) At(id NodeID, p geom.Point) (Occupant, bool) {
	return t.mustNode(id).grid.Lookup(p)
}

// Occupants returns the distinct occupants of id in the order their top-left
// cells appear in column-major order.
func (t *Tree) Occupants(id NodeID) []Occupant {
	var out []Occupant
	t.mustNode(id).grid.Each(func(p geom.Point, o Occupant) bool {
		if o.Area().TopLeft() == p {
			out = append(out, o)
		}
		return true
	})
	return out
}

// Children returns the child layout identifiers of id, sorted.
func (t *Tree) Children(id NodeID) []string {
	n := t.mustNode(id)
	ids := make([]string, 0, len(n.children))
	for k := range n.children {
		ids = append(ids, k)
	}
	slices.Sort(ids)
	return ids
}

// Child resolves a child layout identifier of parent.
func (t *Tree) Child(parent NodeID, layoutID string) (NodeID, error) {
	n, err := t.node(parent)
	if err != nil {
		return NoNode, err
	}
	s, ok := n.children[layoutID]
	if !ok {
		return NoNode, fmt.Errorf("%q in %q: %w", layoutID, n.layoutID, ErrUnknownLayout)
	}
	if _, err := t.node(s.Node); err != nil {
		return NoNode, fmt.Errorf("%q in %q: %w", layoutID, n.layoutID, err)
	}
	return s.Node, nil
}

// Lookup resolves a path of child layout identifiers starting at the root.
// An empty path returns the root.
func (t *Tree) Lookup(path ...string) (NodeID, error) {
	id := t.Root()
	for _, seg := range path {
		next, err := t.Child(id, seg)
		if err != nil {
			return NoNode, err
		}
		id = next
	}
	return id, nil
}

// Path returns the layout identifiers from the root's child down to id. The
// root's path is empty.
func (t *Tree) Path(id NodeID) []string {
	var path []string
	for n := t.mustNode(id); n.parent != NoNode; n = t.mustNode(n.parent) {
		path = append(path, n.layoutID)
	}
	slices.Reverse(path)
	return path
}

// FindFocus searches every node for the element carrying focusID and returns
// its node and top-left cell. Nodes are searched in build order.
func (t *Tree) FindFocus(focusID string) (NodeID, geom.Point, error) {
	for i, n := range t.nodes {
		var (
			at    geom.Point
			found bool
		)
		n.grid.Each(func(p geom.Point, o Occupant) bool {
			if e, ok := AsElement(o); ok && e.FocusID == focusID {
				at, found = e.Rect.TopLeft(), true
				return false
			}
			return true
		})
		if found {
			return NodeID(i), at, nil
		}
	}
	return NoNode, geom.Point{}, fmt.Errorf("%q: %w", focusID, ErrUnknownFocus)
}

// CurrentElement returns the element addressed by the focus point of id.
func (t *Tree) CurrentElement(id NodeID) (*Element, error) {
	n, err := t.node(id)
	if err != nil {
		return nil, err
	}
	return n.currentElement()
}

func (n *node) currentElement() (*Element, error) {
	if !n.hasFocus {
		return nil, fmt.Errorf("%q: %w", n.layoutID, ErrNoFocus)
	}
	o, ok := n.grid.Lookup(n.focus)
	if !ok {
		return nil, fmt.Errorf("%q at %v is empty: %w", n.layoutID, n.focus, ErrFocusNotElement)
	}
	e, ok := AsElement(o)
	if !ok {
		return nil, fmt.Errorf("%q at %v is a sublayout: %w", n.layoutID, n.focus, ErrFocusNotElement)
	}
	return e, nil
}
