// Package render groups the presentation helpers for layout trees.
//
// The engine itself never draws anything; these packages exist so layouts
// can be inspected from the command line and the HTTP driver.
//
//   - [gridview] draws one layout node as a text grid with the focused
//     element highlighted, for terminals.
//   - [dot] exports the whole tree as a Graphviz diagram and renders it to
//     SVG.
//
//	fmt.Println(gridview.Render(tree, tree.Root(), gridview.Options{}))
//
//	svg, err := dot.RenderSVG(ctx, dot.ToDOT(tree, dot.Options{Elements: true}))
package render
