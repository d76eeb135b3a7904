package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/nav"
	"github.com/matzehuels/focusgrid/pkg/render/gridview"
)

// findCommand creates the find command for fuzzy-searching focus identifiers.
func (c *CLI) findCommand() *cobra.Command {
	var (
		limit int
		jump  bool
	)

	cmd := &cobra.Command{
		Use:   "find [file] [query]",
		Short: "Fuzzy-search focus identifiers",
		Long: `Fuzzy-search the focus identifiers of a layout.

Matches are ranked by edit distance, case-insensitively. With --jump, focus
moves to the best match and its layout is drawn.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeLayoutFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFind(args[0], args[1], limit, jump)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of matches to print")
	cmd.Flags().BoolVar(&jump, "jump", false, "focus the best match and draw its layout")

	return cmd
}

func (c *CLI) runFind(path, query string, limit int, jump bool) error {
	n, err := c.loadNavigator(path)
	if err != nil {
		return err
	}

	var matches []focusEntry
	n.View(func(t *nav.Tree, _ nav.NodeID) {
		matches = searchFocus(focusEntries(t), query)
	})
	if len(matches) == 0 {
		printWarning("no focus identifier matches %q", query)
		return nil
	}

	for i, m := range matches {
		if limit > 0 && i == limit {
			printDetail("%d more", len(matches)-limit)
			break
		}
		line := StyleHighlight.Render(m.focusID)
		if m.path != "" {
			line += " " + StyleLayout.Render(m.path)
		}
		fmt.Fprintln(stdout, line)
	}

	if !jump {
		return nil
	}
	if _, err := n.Jump(matches[0].focusID); err != nil {
		return apperr.Classify(err)
	}
	n.View(func(t *nav.Tree, current nav.NodeID) {
		printNewline()
		fmt.Fprintln(stdout, gridview.Render(t, current, gridview.Options{}))
	})
	return nil
}
