package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/layoutfile"
)

// exportCommand creates the export command for converting layout files.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output   string
		format   string
		snapshot bool
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert a layout file to JSON or TOML",
		Long: `Convert a layout file to JSON or TOML.

HCL expressions are evaluated with the --var values, so the output is a
plain layout. With --snapshot the built tree is written instead of the
decoded file: grids report their current size and growable layouts list
their items in growth order.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLayoutFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(args[0], output, format, snapshot)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, toml (default: from output extension, else json)")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "write the built tree rather than the decoded file")

	return cmd
}

func (c *CLI) runExport(path, output, format string, snapshot bool) error {
	l, tree, err := c.loadTree(path)
	if err != nil {
		return err
	}
	if snapshot {
		l = layoutfile.FromTree(tree)
	}

	if output == "" {
		if format == "" {
			format = "json"
		}
		return layoutfile.Write(l, format, stdout)
	}

	if format != "" && !strings.EqualFold("."+format, filepath.Ext(output)) {
		return apperr.New(apperr.ErrCodeInvalidFormat, "--format %s does not match output %s", format, output)
	}
	if err := layoutfile.Export(l, output); err != nil {
		return err
	}
	printSuccess("Layout exported")
	printFile(output)
	printNewline()
	printNextStep("Validate", appName+" validate "+output)
	return nil
}
