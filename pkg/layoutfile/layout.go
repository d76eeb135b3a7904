package layoutfile

// Layout describes one layout node. Rect is required for sublayouts and
// forbidden on the root; Focus is only honored on the root.
type Layout struct {
	ID       string    `json:"id" toml:"id" hcl:"id,label"`
	Rect     []int     `json:"rect,omitempty" toml:"rect,omitempty" hcl:"rect,optional"`
	Size     []int     `json:"size" toml:"size" hcl:"size"`
	Focus    []int     `json:"focus,omitempty" toml:"focus,omitempty" hcl:"focus,optional"`
	Elements []Element `json:"elements,omitempty" toml:"element,omitempty" hcl:"element,block"`
	Buttons  []Button  `json:"buttons,omitempty" toml:"button,omitempty" hcl:"button,block"`
	Grow     *Grow     `json:"grow,omitempty" toml:"grow,omitempty" hcl:"grow,block"`
	Layouts  []Layout  `json:"layouts,omitempty" toml:"layout,omitempty" hcl:"layout,block"`
}

// Element is a fixed focusable element.
type Element struct {
	ID   string `json:"id" toml:"id" hcl:"id,label"`
	Rect []int  `json:"rect" toml:"rect" hcl:"rect"`
}

// Button binds a controller button to a layout action.
type Button struct {
	Name   string `json:"name" toml:"name" hcl:"name,label"`
	Action string `json:"action" toml:"action" hcl:"action"`
}

// Grow makes a layout growable. Item defaults to [1, 1] and Axis to "x".
// Items are inserted in order once the tree is built.
type Grow struct {
	Item  []int    `json:"item,omitempty" toml:"item,omitempty" hcl:"item,optional"`
	Axis  string   `json:"axis,omitempty" toml:"axis,omitempty" hcl:"axis,optional"`
	Items []string `json:"items,omitempty" toml:"items,omitempty" hcl:"items,optional"`
}

// Walk calls fn for l and every nested layout, depth-first in declaration
// order. path holds the layout identifiers below the root.
func (l *Layout) Walk(fn func(path []string, l *Layout)) {
	l.walk(nil, fn)
}

func (l *Layout) walk(path []string, fn func([]string, *Layout)) {
	fn(path, l)
	for i := range l.Layouts {
		child := &l.Layouts[i]
		next := append(path[:len(path):len(path)], child.ID)
		child.walk(next, fn)
	}
}

// FocusIDs returns every focus identifier declared in the file, including
// initial grow items.
func (l *Layout) FocusIDs() []string {
	var ids []string
	l.Walk(func(_ []string, n *Layout) {
		for _, e := range n.Elements {
			ids = append(ids, e.ID)
		}
		if n.Grow != nil {
			ids = append(ids, n.Grow.Items...)
		}
	})
	return ids
}
