package dot

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/focusgrid/pkg/nav"
)

// Options configures layout tree diagrams.
type Options struct {
	// Elements adds a node per focusable element under its layout. When
	// false only layouts and their nesting are drawn.
	Elements bool

	// Detailed adds grid sizes, rects and button bindings to labels.
	Detailed bool

	// Focus highlights the element with this identifier, if present.
	Focus string
}

// ToDOT converts a layout tree to Graphviz DOT. Layouts are boxes, elements
// are rounded boxes, and edges point from a layout to what it contains. The
// result can be rendered with [RenderSVG].
func ToDOT(tree *nav.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=box, style=filled, fillcolor=white];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n\n")

	writeLayout(&buf, tree, tree.Root(), opts)

	buf.WriteString("}\n")
	return buf.String()
}

func writeLayout(buf *bytes.Buffer, tree *nav.Tree, id nav.NodeID, opts Options) {
	name := layoutName(id)
	fmt.Fprintf(buf, "  %s [label=%q];\n", name, layoutLabel(tree, id, opts.Detailed))

	for _, o := range tree.Occupants(id) {
		if s, ok := nav.AsSublayout(o); ok {
			edge := ""
			if opts.Detailed {
				edge = fmt.Sprintf(" [label=%q]", s.Rect.String())
			}
			fmt.Fprintf(buf, "  %s -> %s%s;\n", name, layoutName(s.Node), edge)
			writeLayout(buf, tree, s.Node, opts)
			continue
		}
		if !opts.Elements {
			continue
		}
		e, _ := nav.AsElement(o)
		label := e.FocusID
		if opts.Detailed {
			label += "\n" + e.Rect.String()
		}
		attrs := []string{fmt.Sprintf("label=%q", label), "style=\"filled,rounded\""}
		if opts.Focus != "" && e.FocusID == opts.Focus {
			attrs = append(attrs, "fillcolor=\"#5fafaf\"", "fontcolor=white", "penwidth=2")
		}
		el := fmt.Sprintf("e%d_%d_%d", id, e.Rect.XStart, e.Rect.YStart)
		fmt.Fprintf(buf, "  %s [%s];\n", el, strings.Join(attrs, ", "))
		fmt.Fprintf(buf, "  %s -> %s [arrowhead=none];\n", name, el)
	}
}

func layoutName(id nav.NodeID) string { return fmt.Sprintf("l%d", id) }

func layoutLabel(tree *nav.Tree, id nav.NodeID, detailed bool) string {
	label := tree.LayoutID(id)
	if !detailed {
		return label
	}
	x, y := tree.Size(id)
	parts := []string{label, fmt.Sprintf("%dx%d", x, y)}
	if g, ok := tree.Grow(id); ok {
		parts = append(parts, fmt.Sprintf("grow %dx%d along %s", g.ItemX, g.ItemY, g.Axis))
	}
	buttons := tree.Buttons(id)
	for _, b := range slices.Sorted(maps.Keys(buttons)) {
		parts = append(parts, fmt.Sprintf("%s: %s", b, buttons[b]))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the document scales from a
// zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
