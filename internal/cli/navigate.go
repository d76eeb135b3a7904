package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/nav"
	"github.com/matzehuels/focusgrid/pkg/render/gridview"
)

// navCommand creates the nav command for applying directives to a layout.
func (c *CLI) navCommand() *cobra.Command {
	var (
		show bool
		jump string
	)

	cmd := &cobra.Command{
		Use:   "nav [file] [directive...]",
		Short: "Apply directives and print each result",
		Long: `Apply directives to a layout and print each result.

Directives are up, down, left, right, noop and button:<id>, e.g.

  focusgrid nav examples/home.toml down right right button:L1

Navigation starts on the layout's initial focus, or on --from when given.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: c.completeNav,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNav(args[0], args[1:], jump, show)
		},
	}

	cmd.Flags().StringVar(&jump, "from", "", "focus identifier to start from")
	cmd.Flags().BoolVar(&show, "show", false, "draw the focused layout after the last directive")
	_ = cmd.RegisterFlagCompletionFunc("from", c.completeFocusIDs)

	return cmd
}

func (c *CLI) runNav(path string, args []string, from string, show bool) error {
	directives := make([]nav.Directive, len(args))
	for i, a := range args {
		d, err := nav.ParseDirective(a)
		if err != nil {
			return apperr.Classify(err)
		}
		directives[i] = d
	}

	n, err := c.loadNavigator(path)
	if err != nil {
		return err
	}
	if from != "" {
		if _, err := n.Jump(from); err != nil {
			return apperr.Classify(err)
		}
	}
	printInfo("start %s", describeFocus(n, n.FocusID()))

	for _, d := range directives {
		res, err := n.Navigate(d)
		if err != nil {
			return apperr.Classify(err)
		}
		fmt.Fprintln(stdout, formatResult(n, d, res))
	}

	if show {
		n.View(func(t *nav.Tree, current nav.NodeID) {
			printNewline()
			fmt.Fprintln(stdout, gridview.Render(t, current, gridview.Options{}))
		})
	}
	return nil
}

// formatResult renders one directive and its outcome, e.g.
// "down → across celeste in Home@Games".
func formatResult(n *nav.Navigator, d nav.Directive, res nav.Result) string {
	line := fmt.Sprintf("%-12s %s %s", d, StyleDim.Render(iconArrow), res.Kind)
	if res.Kind == nav.NoNextItem {
		return line + " " + StyleDim.Render("(stays on "+n.FocusID()+")")
	}
	return line + " " + describeFocus(n, res.FocusID)
}

// describeFocus names a focus identifier and, below the root, its layout.
func describeFocus(n *nav.Navigator, focusID string) string {
	out := StyleHighlight.Render(focusID)
	n.View(func(t *nav.Tree, current nav.NodeID) {
		if path := t.Path(current); len(path) > 0 {
			out += " in " + StyleLayout.Render(strings.Join(path, "/"))
		}
	})
	return out
}
