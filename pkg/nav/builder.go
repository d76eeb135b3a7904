package nav

import (
	"fmt"
	"time"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/grid"
	"github.com/matzehuels/focusgrid/pkg/observability"
)

// Builder configures one layout node before the tree is built.
type Builder struct {
	layoutID     string
	sizeX, sizeY int
	elements     []placed
	subs         []*subBuilder
	grow         *growConfig
	buttons      map[Button]ButtonAction
}

type placed struct {
	rect    geom.Rect
	focusID string
}

type subBuilder struct {
	rect geom.Rect
	*Builder
}

// RootBuilder configures the root node and builds the tree.
type RootBuilder struct {
	*Builder
	focus geom.Point
}

// NewRootBuilder starts a tree whose root layout has the given identifier and
// grid size. The root's initial focus point is (0, 0).
func NewRootBuilder(layoutID string, sizeX, sizeY int) *RootBuilder {
	return &RootBuilder{Builder: newBuilder(layoutID, sizeX, sizeY)}
}

func newBuilder(layoutID string, sizeX, sizeY int) *Builder {
	return &Builder{
		layoutID: layoutID,
		sizeX:    sizeX,
		sizeY:    sizeY,
		buttons:  map[Button]ButtonAction{},
	}
}

// LayoutID returns the identifier of the node being configured.
func (b *Builder) LayoutID() string { return b.layoutID }

// AddElement places a fixed element. It fails with ErrMixedLayout on a
// growable node.
func (b *Builder) AddElement(r geom.Rect, focusID string) error {
	if b.grow != nil {
		return fmt.Errorf("%q: element %q: %w", b.layoutID, focusID, ErrMixedLayout)
	}
	b.elements = append(b.elements, placed{rect: r, focusID: focusID})
	return nil
}

// SetGrowable turns the node into a growable layout of itemX by itemY items
// appended along axis. It fails with ErrMixedLayout when fixed elements were
// already added.
func (b *Builder) SetGrowable(itemX, itemY int, axis GrowAxis) error {
	if len(b.elements) > 0 {
		return fmt.Errorf("%q: %w", b.layoutID, ErrMixedLayout)
	}
	if itemX <= 0 || itemY <= 0 {
		return fmt.Errorf("%q: item size %dx%d: %w", b.layoutID, itemX, itemY, ErrInvalidGrow)
	}
	b.grow = &growConfig{itemX: itemX, itemY: itemY, axis: axis}
	return nil
}

// WithSublayout embeds a child layout occupying r and returns its builder.
func (b *Builder) WithSublayout(r geom.Rect, layoutID string, sizeX, sizeY int) *Builder {
	child := newBuilder(layoutID, sizeX, sizeY)
	b.subs = append(b.subs, &subBuilder{rect: r, Builder: child})
	return child
}

// BindButton binds a controller button to an action on this node.
func (b *Builder) BindButton(btn Button, action ButtonAction) {
	b.buttons[btn] = action
}

// SetInitialFocus overrides the root's initial focus point.
func (b *RootBuilder) SetInitialFocus(x, y int) {
	b.focus = geom.Point{X: x, Y: y}
}

// Build allocates every node depth-first, fills elements before recursing
// into sublayouts, and links each child to its parent.
func (b *RootBuilder) Build() (*Tree, error) {
	start := time.Now()
	t, err := b.buildTree()
	observability.Layout().OnBuild(b.layoutID, t.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (b *RootBuilder) buildTree() (*Tree, error) {
	t := &Tree{}
	root, err := b.build(t, NoNode)
	if err != nil {
		return t, err
	}
	if err := t.SetFocus(root, b.focus); err != nil {
		return t, fmt.Errorf("initial focus: %w", err)
	}
	return t, nil
}

func (b *Builder) build(t *Tree, parent NodeID) (NodeID, error) {
	g, err := grid.New[Occupant](b.sizeX, b.sizeY)
	if err != nil {
		return NoNode, fmt.Errorf("layout %q: %w", b.layoutID, err)
	}
	id := NodeID(len(t.nodes))
	n := &node{
		layoutID: b.layoutID,
		grid:     g,
		buttons:  make(map[Button]ButtonAction, len(b.buttons)),
		parent:   parent,
		children: make(map[string]*Sublayout, len(b.subs)),
	}
	for btn, a := range b.buttons {
		n.buttons[btn] = a
	}
	t.nodes = append(t.nodes, n)

	for _, e := range b.elements {
		if err := g.Fill(e.rect, &Element{FocusID: e.focusID, Rect: e.rect}); err != nil {
			return NoNode, fmt.Errorf("layout %q: element %q: %w", b.layoutID, e.focusID, err)
		}
	}

	if b.grow != nil {
		gc := *b.grow
		if !g.ContainsRect(gc.slot(geom.Point{})) {
			return NoNode, fmt.Errorf("layout %q: item %dx%d does not fit %dx%d: %w",
				b.layoutID, gc.itemX, gc.itemY, b.sizeX, b.sizeY, ErrInvalidGrow)
		}
		n.grow = &gc
	}

	for _, s := range b.subs {
		if _, dup := n.children[s.layoutID]; dup {
			return NoNode, fmt.Errorf("layout %q: child %q: %w", b.layoutID, s.layoutID, ErrDuplicateLayout)
		}
		child, err := s.build(t, id)
		if err != nil {
			return NoNode, err
		}
		occ := &Sublayout{LayoutID: s.layoutID, Node: child, Rect: s.rect}
		if err := g.Fill(s.rect, occ); err != nil {
			return NoNode, fmt.Errorf("layout %q: sublayout %q: %w", b.layoutID, s.layoutID, err)
		}
		n.children[s.layoutID] = occ
	}
	return id, nil
}
