// Package pkg provides the libraries behind focusgrid, a directional focus
// navigation engine for controller and keyboard driven interfaces.
//
// # Overview
//
// A screen is described as a tree of grid layouts. Every grid cell is empty,
// covered by a focusable element, or covered by a nested sublayout. Focus
// moves with up, down, left and right directives and with named buttons bound
// to edge jumps. When a move leaves a grid, the position is scaled
// proportionally into the parent or child grid so focus lands where the user
// expects. The pkg directory is organized as follows:
//
//  1. [geom] - Points, vectors, rects and proportional positions
//  2. [grid] - A fixed-size occupancy grid of rects
//  3. [nav] - The layout tree, growable layouts and the navigator
//  4. [layoutfile] - TOML, HCL and JSON layout files
//  5. [render] - Terminal grids and Graphviz diagrams
//  6. [server] - The HTTP API over a navigator
//
// # Architecture
//
// The typical data flow:
//
//	layout file (TOML / HCL / JSON)
//	         ↓
//	    [layoutfile] package (decode + build)
//	         ↓
//	    [nav] package (tree + navigator)
//	         ↓
//	    directives → results, or [render] / [server]
//
// # Quick Start
//
// Build a layout in code and move focus around it:
//
//	import (
//	    "github.com/matzehuels/focusgrid/pkg/geom"
//	    "github.com/matzehuels/focusgrid/pkg/nav"
//	)
//
//	// 1. Describe the root grid and its occupants
//	root := nav.NewRootBuilder("Home", 4, 6)
//	_ = root.AddElement(geom.MustRect(0, 0, 0, 0), "BTN@GAMES")
//	games := root.WithSublayout(geom.MustRect(0, 3, 1, 5), "Home@Games", 7, 10)
//	_ = games.SetGrowable(1, 1, nav.GrowX)
//
//	// 2. Compile the tree and start navigating
//	tree, _ := root.Build()
//	n, _ := nav.NewNavigator(tree)
//
//	// 3. Add items at runtime and move
//	shelf, _ := n.Lookup("Home@Games")
//	_, _ = n.Insert(shelf, "celeste")
//	res, _ := n.Navigate(nav.Move(nav.Down)) // across celeste
//
// Or load the same screen from a file:
//
//	l, _ := layoutfile.Load("examples/home.toml", layoutfile.Options{})
//	tree, _ := l.Build()
//
// # Supporting Packages
//
// [errors] - Coded errors shared by the CLI and HTTP API, and classification
// of engine sentinels into those codes.
//
// [observability] - Hooks for navigation and HTTP events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/nav/...                # Specific package
//	go test -run Example ./pkg/nav       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/geom
// [grid]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/grid
// [nav]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/nav
// [layoutfile]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/layoutfile
// [render]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/render
// [server]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/focusgrid/pkg/buildinfo
package pkg
