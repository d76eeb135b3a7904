package layoutfile

import (
	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/nav"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
)

type pendingItems struct {
	path  []string
	items []string
}

// Build compiles l into a navigation tree. Initial grow items are inserted
// after the tree is built, layout by layout in declaration order.
func (l *Layout) Build() (*nav.Tree, error) {
	if err := apperr.ValidateLayoutID(l.ID); err != nil {
		return nil, err
	}
	if len(l.Rect) != 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidLayout, "root layout %q cannot have a rect", l.ID)
	}
	sx, sy, err := pair(l.ID, "size", l.Size)
	if err != nil {
		return nil, err
	}

	root := nav.NewRootBuilder(l.ID, sx, sy)
	if len(l.Focus) != 0 {
		fx, fy, err := pair(l.ID, "focus", l.Focus)
		if err != nil {
			return nil, err
		}
		root.SetInitialFocus(fx, fy)
	}

	var pending []pendingItems
	if err := l.configure(root.Builder, nil, &pending); err != nil {
		return nil, err
	}
	tree, err := root.Build()
	if err != nil {
		return nil, apperr.Classify(err)
	}

	for _, p := range pending {
		id, err := tree.Lookup(p.path...)
		if err != nil {
			return nil, apperr.Classify(err)
		}
		for _, item := range p.items {
			if _, err := tree.Insert(id, item); err != nil {
				return nil, apperr.Classify(err)
			}
		}
	}
	return tree, nil
}

func (l *Layout) configure(b *nav.Builder, path []string, pending *[]pendingItems) error {
	for _, e := range l.Elements {
		if err := apperr.ValidateFocusID(e.ID); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidLayout, err, "layout %q", l.ID)
		}
		r, err := rect(l.ID, e.ID, e.Rect)
		if err != nil {
			return err
		}
		if err := b.AddElement(r, e.ID); err != nil {
			return apperr.Classify(err)
		}
	}

	for _, btn := range l.Buttons {
		if btn.Name == "" {
			return apperr.New(apperr.ErrCodeInvalidLayout, "layout %q: button name cannot be empty", l.ID)
		}
		action, err := nav.ParseButtonAction(btn.Action)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidLayout, err, "layout %q: button %q", l.ID, btn.Name)
		}
		b.BindButton(nav.Button(btn.Name), action)
	}

	if g := l.Grow; g != nil {
		ix, iy := 1, 1
		if len(g.Item) != 0 {
			var err error
			if ix, iy, err = pair(l.ID, "grow item", g.Item); err != nil {
				return err
			}
		}
		axis, err := nav.ParseGrowAxis(g.Axis)
		if err != nil {
			return apperr.Classify(err)
		}
		if err := b.SetGrowable(ix, iy, axis); err != nil {
			return apperr.Classify(err)
		}
		for _, item := range g.Items {
			if err := apperr.ValidateFocusID(item); err != nil {
				return apperr.Wrap(apperr.ErrCodeInvalidLayout, err, "layout %q: grow item", l.ID)
			}
		}
		if len(g.Items) > 0 {
			*pending = append(*pending, pendingItems{path: path, items: g.Items})
		}
	}

	for i := range l.Layouts {
		c := &l.Layouts[i]
		if err := apperr.ValidateLayoutID(c.ID); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidLayout, err, "layout %q", l.ID)
		}
		if len(c.Rect) == 0 {
			return apperr.New(apperr.ErrCodeInvalidLayout, "sublayout %q of %q needs a rect", c.ID, l.ID)
		}
		if len(c.Focus) != 0 {
			return apperr.New(apperr.ErrCodeInvalidLayout, "sublayout %q cannot set focus", c.ID)
		}
		r, err := rect(l.ID, c.ID, c.Rect)
		if err != nil {
			return err
		}
		sx, sy, err := pair(c.ID, "size", c.Size)
		if err != nil {
			return err
		}
		child := b.WithSublayout(r, c.ID, sx, sy)
		next := append(path[:len(path):len(path)], c.ID)
		if err := c.configure(child, next, pending); err != nil {
			return err
		}
	}
	return nil
}

func pair(layoutID, field string, v []int) (int, int, error) {
	if len(v) != 2 {
		return 0, 0, apperr.New(apperr.ErrCodeInvalidLayout, "layout %q: %s must have 2 values, got %d", layoutID, field, len(v))
	}
	return v[0], v[1], nil
}

func rect(layoutID, what string, v []int) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, apperr.New(apperr.ErrCodeInvalidLayout, "layout %q: rect of %q must be [x_start, x_end, y_start, y_end], got %d values", layoutID, what, len(v))
	}
	r, err := geom.NewRect(v[0], v[1], v[2], v[3])
	if err != nil {
		return geom.Rect{}, apperr.Wrap(apperr.ErrCodeInvalidLayout, err, "layout %q: rect of %q", layoutID, what)
	}
	return r, nil
}
