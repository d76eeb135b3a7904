// Package nav resolves directional and button navigation over a tree of
// nested focus grids, as used by controller-driven launchers where a D-pad
// moves a single highlight around the screen.
//
// # Model
//
// A layout is a grid of cells (see package grid). Each occupied cell holds an
// [Occupant]: either an [Element], a focusable leaf identified by an opaque
// focus identifier, or a [Sublayout], an embedded child grid. Occupants cover
// whole rectangles and every cell of the rectangle shares the same occupant.
//
// Layouts form a tree. All nodes live in a single [Tree] arena and refer to
// each other by [NodeID]: a node stores its parent's index and an index from
// child layout identifiers to the Sublayout occupant that embeds each child.
// There are no pointers between nodes, so the tree has a single owner and can
// be guarded by one lock.
//
// # Building
//
// Trees are constructed once with a [RootBuilder]. Nested layouts are
// configured through the [Builder] returned by [Builder.WithSublayout]; only
// the root builder has a Build method, so a child can never be built without
// the parent link that exit navigation needs:
//
//	root := nav.NewRootBuilder("Home", 4, 6)
//	_ = root.AddElement(geom.MustRect(0, 0, 0, 0), "BTN@GAMES")
//	games := root.WithSublayout(geom.MustRect(0, 3, 1, 5), "Home@Games", 7, 10)
//	_ = games.SetGrowable(1, 1, nav.GrowX)
//	tree, err := root.Build()
//
// # Navigating
//
// [Tree.Navigate] applies one [Directive] to one node and returns a [Result]:
// WithinLayout when focus moved inside that node, AcrossLayout when it landed
// in another node, or NoNextItem when nothing lies in the requested direction
// anywhere in the reachable tree. NoNextItem is an outcome, not an error.
//
// A directional move scans cell by cell from the corner of the focused
// element that faces the travel direction. When the first step would leave
// the grid, the node hands the move to its parent together with the exit
// position normalized to [0, 1] on each axis; the parent maps it back next to
// the child's rectangle and keeps scanning. When a scan reaches a Sublayout,
// the entry position inside the child's rectangle is normalized the same way
// and the child continues from the matching cell of its own grid. If the
// primary line is empty, a side scan probes perpendicular to it; side probes
// stop at the first Sublayout cell they meet and never descend into it.
//
// Most callers should use a [Navigator], which tracks the focused node,
// caches the focused identifier for presentation, and serializes access.
//
// # Growable layouts
//
// A node configured with [Builder.SetGrowable] accepts runtime insertions via
// [Tree.Insert]. Items are appended along the growth axis, wrap to the next
// band when the current one is full, and the grid expands by exactly one item
// band when needed. Growable grids never shrink.
//
// # Concurrency
//
// Tree is not safe for concurrent use. Navigator holds one mutex for the
// duration of each top-level call, which covers the whole recursive parent and
// child call chain without re-acquiring per-node locks.
package nav
