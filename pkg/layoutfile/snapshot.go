package layoutfile

import (
	"cmp"
	"maps"
	"slices"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

// FromTree snapshots the current state of tree. Grids report their current
// size, so a growable layout that expanded at runtime is written with its
// expanded size and its items in growth order. The root focus is the root's
// current focus point.
func FromTree(tree *nav.Tree) *Layout {
	root := tree.Root()
	l := snapshot(tree, root)
	if p, ok := tree.Focus(root); ok {
		l.Focus = []int{p.X, p.Y}
	}
	return l
}

func snapshot(tree *nav.Tree, id nav.NodeID) *Layout {
	x, y := tree.Size(id)
	l := &Layout{ID: tree.LayoutID(id), Size: []int{x, y}}

	buttons := tree.Buttons(id)
	for _, name := range slices.Sorted(maps.Keys(buttons)) {
		l.Buttons = append(l.Buttons, Button{Name: string(name), Action: buttons[name].String()})
	}

	gs, growable := tree.Grow(id)
	var items []*nav.Element
	for _, o := range tree.Occupants(id) {
		if s, ok := nav.AsSublayout(o); ok {
			child := snapshot(tree, s.Node)
			child.Rect = rectSlice(s.Rect)
			l.Layouts = append(l.Layouts, *child)
			continue
		}
		e, _ := nav.AsElement(o)
		if growable {
			items = append(items, e)
			continue
		}
		l.Elements = append(l.Elements, Element{ID: e.FocusID, Rect: rectSlice(e.Rect)})
	}

	if growable {
		slices.SortFunc(items, func(a, b *nav.Element) int {
			return growthOrder(a.Rect.TopLeft(), b.Rect.TopLeft(), gs.Axis)
		})
		g := &Grow{Item: []int{gs.ItemX, gs.ItemY}, Axis: gs.Axis.String()}
		for _, e := range items {
			g.Items = append(g.Items, e.FocusID)
		}
		l.Grow = g
	}
	return l
}

func growthOrder(a, b geom.Point, axis nav.GrowAxis) int {
	if axis == nav.GrowX {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	}
	return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
}

func rectSlice(r geom.Rect) []int {
	return []int{r.XStart, r.XEnd, r.YStart, r.YEnd}
}
