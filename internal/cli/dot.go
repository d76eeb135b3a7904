package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/nav"
	"github.com/matzehuels/focusgrid/pkg/render/dot"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	output   string // output file; stdout when empty
	format   string // "dot" or "svg"; inferred from output when empty
	elements bool   // include elements, not just layouts
	detailed bool   // add sizes, rects and buttons to labels
}

// dotCommand creates the dot command for exporting layout tree diagrams.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Export the layout tree as Graphviz DOT or SVG",
		Long: `Export the layout tree as a Graphviz diagram.

The format follows the output extension (.dot or .svg) unless --format is
given. SVG is rendered with an embedded Graphviz, no install needed.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLayoutFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot (default), svg")
	cmd.Flags().BoolVarP(&opts.elements, "elements", "e", false, "include elements")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show sizes, rects and button bindings")

	return cmd
}

func (c *CLI) runDot(ctx context.Context, path string, opts dotOpts) error {
	format := opts.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(opts.output), ".")
	}
	if format == "" {
		format = "dot"
	}
	if format != "dot" && format != "svg" {
		return apperr.New(apperr.ErrCodeUnsupported, "diagram format %q (want dot or svg)", format)
	}

	n, err := c.loadNavigator(path)
	if err != nil {
		return err
	}
	diagram := dot.Options{Elements: opts.elements, Detailed: opts.detailed, Focus: n.FocusID()}
	var src string
	n.View(func(t *nav.Tree, _ nav.NodeID) { src = dot.ToDOT(t, diagram) })

	out := []byte(src)
	if format == "svg" {
		spinner := newSpinner(ctx, "Rendering SVG...")
		spinner.Start()
		out, err = dot.RenderSVG(ctx, src)
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		spinner.Stop()
	}

	if opts.output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Diagram written")
	printFile(opts.output)
	return nil
}
