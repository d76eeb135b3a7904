package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/nav"
	"github.com/matzehuels/focusgrid/pkg/render/gridview"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	layout    string // slash-separated layout path, empty for the root
	all       bool   // draw every layout in the tree
	occupants bool   // list occupants below each grid
	cellWidth int    // grid cell width in columns
}

// showCommand creates the show command for drawing layout grids.
func (c *CLI) showCommand() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Draw a layout grid",
		Long: `Draw a layout grid with the initially focused element highlighted.

By default the root layout is drawn. Use --layout to pick a nested layout by
its path of identifiers (e.g. --layout Home@Games), or --all for every
layout in the tree.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLayoutFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "layout path below the root")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "draw every layout")
	cmd.Flags().BoolVar(&opts.occupants, "occupants", false, "list occupants below each grid")
	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", 0, "grid cell width in columns (default 8)")

	return cmd
}

func (c *CLI) runShow(path string, opts showOpts) error {
	n, err := c.loadNavigator(path)
	if err != nil {
		return err
	}

	var ids []nav.NodeID
	if opts.all {
		n.View(func(t *nav.Tree, _ nav.NodeID) {
			for id := nav.NodeID(0); int(id) < t.Len(); id++ {
				ids = append(ids, id)
			}
		})
	} else {
		segs, err := apperr.ParseLayoutPath(opts.layout)
		if err != nil {
			return err
		}
		id, err := n.Lookup(segs...)
		if err != nil {
			return apperr.Classify(err)
		}
		ids = append(ids, id)
	}

	printKeyValue("focus", n.FocusID())
	n.View(func(t *nav.Tree, current nav.NodeID) {
		for _, id := range ids {
			printNewline()
			fmt.Fprintln(stdout, gridview.Render(t, id, gridview.Options{
				CellWidth: opts.cellWidth,
				HideFocus: id != current,
			}))
			if opts.occupants {
				fmt.Fprintln(stdout, occupantTable(t, id))
			}
		}
	})
	return nil
}

// occupantTable lists the occupants of id in column-major order.
func occupantTable(t *nav.Tree, id nav.NodeID) string {
	var rows [][]string
	for _, o := range t.Occupants(id) {
		if s, ok := nav.AsSublayout(o); ok {
			path := strings.Join(t.Path(s.Node), "/")
			rows = append(rows, []string{"layout", path, s.Rect.String()})
			continue
		}
		e, _ := nav.AsElement(o)
		rows = append(rows, []string{"element", e.FocusID, e.Rect.String()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Identifier", "Rect").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && rows[row][0] == "layout" {
				return StyleLayout
			}
			if col == 2 {
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
