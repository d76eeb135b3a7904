package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

// validateCommand creates the validate command for checking layout files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that layout files build and start on an element",
		Long: `Check that layout files build and start on an element.

Every file is decoded, compiled into a navigation tree, and its initial focus
is resolved. All files are checked even when one fails.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeLayoutFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args)
		},
	}
}

func (c *CLI) runValidate(paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := c.validateFile(path); err != nil {
			c.Logger.Debug("validation failed", "file", path, "code", apperr.GetCode(err), "err", err)
			printError("%s: %s", path, apperr.UserMessage(err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d layout files invalid", failed, len(paths))
	}
	return nil
}

func (c *CLI) validateFile(path string) error {
	_, tree, err := c.loadTree(path)
	if err != nil {
		return err
	}
	n, err := nav.NewNavigator(tree)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidLayout, err, "initial focus does not address an element")
	}
	printSuccess("%s", path)
	printStats(treeStats(tree))
	printDetail("starts on %s", n.FocusID())
	return nil
}
