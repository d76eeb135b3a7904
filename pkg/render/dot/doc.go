// Package dot exports a layout tree as a Graphviz diagram.
//
// [ToDOT] walks the tree from the root and emits one node per layout, and
// optionally one per element, with edges from each layout to what it
// contains. [RenderSVG] renders the DOT source with the embedded Graphviz
// library, so no external binary is needed.
//
//	src := dot.ToDOT(tree, dot.Options{Elements: true, Focus: nav.FocusID()})
//	svg, err := dot.RenderSVG(ctx, src)
package dot
