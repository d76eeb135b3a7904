// Package gridview draws a single layout node as a text grid.
//
// Each grid cell is one table cell. An element's identifier is written in
// its top-left cell and its remaining cells are shaded; sublayouts show
// their layout identifier in brackets; empty cells show a dot. The element
// under the node's focus point is highlighted and marked with ">".
package gridview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")

	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleElement   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSpan      = lipgloss.NewStyle().Foreground(colorDim)
	styleSublayout = lipgloss.NewStyle().Foreground(colorBlue)
	styleEmpty     = lipgloss.NewStyle().Foreground(colorDim)
	styleFocus     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Reverse(true)
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

const (
	focusMarker  = ">"
	spanMarker   = "·"
	emptyMarker  = "."
	defaultWidth = 8
)

// Options configures grid rendering.
type Options struct {
	// CellWidth is the width of one grid cell in columns. Defaults to 8.
	CellWidth int

	// HideFocus disables the focus highlight, e.g. for nodes that are not
	// the navigator's current node.
	HideFocus bool
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellElement
	cellSpan
	cellSublayout
	cellFocus
)

// Render draws node id of tree with a title line.
func Render(tree *nav.Tree, id nav.NodeID, opts Options) string {
	width := opts.CellWidth
	if width <= 0 {
		width = defaultWidth
	}
	xs, ys := tree.Size(id)

	var focused *nav.Element
	if p, ok := tree.Focus(id); ok && !opts.HideFocus {
		if o, ok := tree.At(id, p); ok {
			focused, _ = nav.AsElement(o)
		}
	}

	kinds := make([][]cellKind, ys)
	rows := make([][]string, ys)
	for y := 0; y < ys; y++ {
		kinds[y] = make([]cellKind, xs+1)
		rows[y] = make([]string, xs+1)
		rows[y][0] = strconv.Itoa(y)
		for x := 0; x < xs; x++ {
			text, kind := cell(tree, id, geom.Point{X: x, Y: y}, focused)
			rows[y][x+1] = ansi.Truncate(text, width, "…")
			kinds[y][x+1] = kind
		}
	}

	headers := make([]string, xs+1)
	for x := 0; x < xs; x++ {
		headers[x+1] = strconv.Itoa(x)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return styleHeader
			}
			base := lipgloss.NewStyle().Width(width)
			switch kinds[row][col] {
			case cellElement:
				return base.Inherit(styleElement)
			case cellSpan:
				return base.Inherit(styleSpan)
			case cellSublayout:
				return base.Inherit(styleSublayout)
			case cellFocus:
				return base.Inherit(styleFocus)
			}
			return base.Inherit(styleEmpty)
		})

	var b strings.Builder
	b.WriteString(Title(tree, id))
	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}

// Title returns a one-line heading for node id: its lookup path, size and
// growth settings.
func Title(tree *nav.Tree, id nav.NodeID) string {
	xs, ys := tree.Size(id)
	path := append([]string{tree.LayoutID(tree.Root())}, tree.Path(id)...)
	title := fmt.Sprintf("%s %s", styleTitle.Render(strings.Join(path, "/")), styleSpan.Render(fmt.Sprintf("%dx%d", xs, ys)))
	if g, ok := tree.Grow(id); ok {
		title += styleSpan.Render(fmt.Sprintf(" grows %dx%d along %s", g.ItemX, g.ItemY, g.Axis))
	}
	return title
}

func cell(tree *nav.Tree, id nav.NodeID, p geom.Point, focused *nav.Element) (string, cellKind) {
	o, ok := tree.At(id, p)
	if !ok {
		return emptyMarker, cellEmpty
	}
	if s, ok := nav.AsSublayout(o); ok {
		if s.Rect.TopLeft() != p {
			return spanMarker, cellSublayout
		}
		return "[" + s.LayoutID + "]", cellSublayout
	}
	e, _ := nav.AsElement(o)
	top := e.Rect.TopLeft() == p
	switch {
	case e == focused && top:
		return focusMarker + e.FocusID, cellFocus
	case e == focused:
		return spanMarker, cellFocus
	case top:
		return e.FocusID, cellElement
	}
	return spanMarker, cellSpan
}
