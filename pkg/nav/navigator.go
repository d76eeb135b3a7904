package nav

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/focusgrid/pkg/observability"
)

// Navigator is the entry point for driving focus over a [Tree]. It remembers
// which node holds focus, caches the focused identifier, and serializes every
// call with a single mutex held for the whole recursive navigation.
type Navigator struct {
	mu      sync.Mutex
	tree    *Tree
	current NodeID
	focusID string
	logger  *log.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for navigation events. Navigators discard
// log output by default.
func WithLogger(l *log.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNavigator starts navigation at the root of tree. The root's initial
// focus point must address an element.
func NewNavigator(tree *Tree, opts ...Option) (*Navigator, error) {
	n := &Navigator{
		tree:    tree,
		current: tree.Root(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(n)
	}
	if _, err := n.Navigate(Noop()); err != nil {
		return nil, fmt.Errorf("initial focus: %w", err)
	}
	return n, nil
}

// Navigate applies d starting from the node that currently holds focus.
//
// Results are reported relative to that node: WithinLayout when focus ends in
// it, AcrossLayout otherwise. A crossing that leaves a node and comes back to
// it is therefore reported as WithinLayout. On NoNextItem and on error the
// focused node and identifier are unchanged.
func (n *Navigator) Navigate(d Directive) (Result, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.navigate(d)
}

// Focus is where focus rests after a call, captured under the same lock as
// the call itself.
type Focus struct {
	Node    NodeID
	FocusID string
	// Path holds the layout identifiers from the root down to Node.
	Path []string
}

// NavigateFocus is [Navigator.Navigate] that also reports the resulting
// focus. On NoNextItem the focus is the one the directive left in place.
func (n *Navigator) NavigateFocus(d Directive) (Result, Focus, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	res, err := n.navigate(d)
	if err != nil {
		return res, Focus{}, err
	}
	return res, n.focus(), nil
}

func (n *Navigator) navigate(d Directive) (Result, error) {
	start := time.Now()
	res, err := n.tree.Navigate(n.current, d)
	observability.Navigation().OnNavigate(d.String(), res.Kind.String(), res.FocusID, time.Since(start), err)
	if err != nil {
		n.logger.Error("navigation failed", "directive", d, "layout", n.tree.LayoutID(n.current), "err", err)
		return noNextItem, err
	}
	if res.Kind == NoNextItem {
		n.logger.Debug("no next item", "directive", d, "layout", n.tree.LayoutID(n.current))
		return res, nil
	}

	if res.Node == n.current {
		res.Kind = WithinLayout
	} else {
		res.Kind = AcrossLayout
	}
	n.current, n.focusID = res.Node, res.FocusID
	n.logger.Debug("focus moved", "directive", d, "result", res.Kind, "focus", res.FocusID, "layout", n.tree.LayoutID(res.Node))
	return res, nil
}

func (n *Navigator) focus() Focus {
	return Focus{Node: n.current, FocusID: n.focusID, Path: n.tree.Path(n.current)}
}

// FocusID returns the cached focused identifier.
func (n *Navigator) FocusID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.focusID
}

// Current returns the node holding focus.
func (n *Navigator) Current() NodeID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Lookup resolves a layout path from the root.
func (n *Navigator) Lookup(path ...string) (NodeID, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.tree.Lookup(path...)
}

// Insert appends an element to the growable node id. Focus is not moved.
func (n *Navigator) Insert(id NodeID, focusID string) (Insertion, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ins, err := n.tree.Insert(id, focusID)
	layoutID := ""
	if _, nerr := n.tree.node(id); nerr == nil {
		layoutID = n.tree.LayoutID(id)
	}
	observability.Layout().OnInsert(layoutID, focusID, ins.Expanded, err)
	if err != nil {
		n.logger.Warn("insert failed", "layout", layoutID, "focus", focusID, "err", err)
		return ins, err
	}
	n.logger.Debug("inserted", "layout", layoutID, "focus", focusID, "rect", ins.Rect, "expanded", ins.Expanded)
	return ins, nil
}

// Jump moves focus directly to the element carrying focusID, wherever it is
// in the tree.
func (n *Navigator) Jump(focusID string) (Result, error) {
	res, _, err := n.JumpFocus(focusID)
	return res, err
}

// JumpFocus is [Navigator.Jump] that also reports the resulting focus.
func (n *Navigator) JumpFocus(focusID string) (Result, Focus, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	res, err := n.jump(focusID)
	observability.Navigation().OnJump(focusID, err)
	if err != nil {
		return noNextItem, Focus{}, err
	}
	n.logger.Debug("jumped", "focus", focusID, "layout", n.tree.LayoutID(res.Node))
	return res, n.focus(), nil
}

func (n *Navigator) jump(focusID string) (Result, error) {
	id, at, err := n.tree.FindFocus(focusID)
	if err != nil {
		return noNextItem, err
	}
	if err := n.tree.SetFocus(id, at); err != nil {
		return noNextItem, err
	}
	kind := AcrossLayout
	if id == n.current {
		kind = WithinLayout
	}
	n.current, n.focusID = id, focusID
	return Result{Kind: kind, FocusID: focusID, Node: id}, nil
}

// View calls fn with the tree while holding the navigator's lock. fn must not
// retain the tree or call back into the navigator.
func (n *Navigator) View(fn func(t *Tree, current NodeID)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fn(n.tree, n.current)
}
