package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/focusgrid/pkg/layoutfile"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for focusgrid.

Layout arguments complete to .toml, .hcl and .json files. The nav command
also completes directives, including the buttons bound in the layout, and
--from completes focus identifiers.

  $ source <(focusgrid completion bash)
  $ focusgrid completion zsh > "${fpath[1]}/_focusgrid"
  $ focusgrid completion fish > ~/.config/fish/completions/focusgrid.fish
  PS> focusgrid completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// layoutExtensions lists layout file extensions without the leading dot.
func layoutExtensions() []string {
	exts := make([]string, len(layoutfile.Formats))
	for i, f := range layoutfile.Formats {
		exts[i] = strings.TrimPrefix(f, ".")
	}
	return exts
}

// completeLayoutFile completes the first argument to a layout file.
func completeLayoutFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return layoutExtensions(), cobra.ShellCompDirectiveFilterFileExt
}

// completeLayoutFiles completes every argument to a layout file.
func completeLayoutFiles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return layoutExtensions(), cobra.ShellCompDirectiveFilterFileExt
}

// completeNav completes the layout file, then directives. Buttons bound
// anywhere in the layout are offered as button:<id>.
func (c *CLI) completeNav(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return layoutExtensions(), cobra.ShellCompDirectiveFilterFileExt
	}
	out := []string{"up", "down", "left", "right", "noop"}
	_, tree, err := c.loadTree(args[0])
	if err != nil {
		return out, cobra.ShellCompDirectiveNoFileComp
	}

	var buttons []string
	for id := nav.NodeID(0); int(id) < tree.Len(); id++ {
		for b := range tree.Buttons(id) {
			if name := "button:" + string(b); !slices.Contains(buttons, name) {
				buttons = append(buttons, name)
			}
		}
	}
	slices.Sort(buttons)
	return append(out, buttons...), cobra.ShellCompDirectiveNoFileComp
}

// completeFocusIDs completes a focus identifier of the layout in args[0].
func (c *CLI) completeFocusIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, tree, err := c.loadTree(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var ids []string
	for _, e := range focusEntries(tree) {
		ids = append(ids, e.focusID)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
