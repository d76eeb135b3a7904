// Package layoutfile reads and writes static layout descriptions and compiles
// them into navigation trees.
//
// # Overview
//
// A layout file describes one root layout and, recursively, the sublayouts it
// embeds. The same model is accepted in three formats, chosen by file
// extension in [Load]:
//
//   - .toml: decoded with BurntSushi/toml
//   - .hcl: decoded with hashicorp/hcl; expressions may reference
//     command-line variables as var.<name>
//   - .json: decoded with encoding/json
//
// Unknown keys are rejected in every format.
//
// # TOML Format
//
//	id = "Home"
//	size = [4, 6]      # x, y
//	focus = [0, 0]     # optional initial focus, root only
//
//	[[element]]
//	id = "BTN@GAMES"
//	rect = [0, 0, 0, 0]  # x_start, x_end, y_start, y_end (inclusive)
//
//	[[button]]
//	name = "R1"
//	action = "jump-right-edge"
//
//	[[layout]]
//	id = "Home@Games"
//	rect = [0, 3, 1, 5]
//	size = [7, 10]
//
//	[layout.grow]
//	item = [1, 1]
//	axis = "x"
//	items = ["celeste", "hades"]
//
// # HCL Format
//
// The HCL form uses labelled blocks for layouts, elements and buttons:
//
//	layout "Home" {
//	  size = [4, var.rows]
//
//	  element "BTN@GAMES" {
//	    rect = [0, 0, 0, 0]
//	  }
//
//	  layout "Home@Games" {
//	    rect = [0, 3, 1, var.rows - 1]
//	    size = [7, 10]
//	    grow {
//	      items = ["celeste", "hades"]
//	    }
//	  }
//	}
//
// # Compiling
//
// [Layout.Build] validates identifiers, converts coordinate lists to rects,
// configures a [nav.RootBuilder], builds the tree, and finally inserts the
// initial items of every growable layout in declaration order. [FromTree]
// goes the other way and snapshots a live tree, including items inserted at
// runtime, so that building the snapshot reproduces the same placement.
package layoutfile
