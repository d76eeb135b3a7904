// Package cli implements the focusgrid command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/focusgrid/pkg/buildinfo"
	"github.com/matzehuels/focusgrid/pkg/layoutfile"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "focusgrid"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = "127.0.0.1:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// vars are the --var name=value pairs passed to HCL layouts.
	vars []string
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Focusgrid moves focus around nested grid layouts",
		Long: `Focusgrid is a directional focus-navigation engine for controller and
keyboard driven interfaces. Layouts are grids of elements and nested
sublayouts, described in TOML, HCL or JSON files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringArrayVar(&c.vars, "var", nil, "HCL variable as name=value (repeatable)")

	// Register all subcommands
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.navCommand())
	root.AddCommand(c.findCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Layout Loading
// =============================================================================

// loadLayout reads a layout file with the --var values applied.
func (c *CLI) loadLayout(path string) (*layoutfile.Layout, error) {
	vars, err := layoutfile.ParseVars(c.vars)
	if err != nil {
		return nil, err
	}
	return layoutfile.Load(path, layoutfile.Options{Vars: vars})
}

// loadTree reads and builds a layout file.
func (c *CLI) loadTree(path string) (*layoutfile.Layout, *nav.Tree, error) {
	prog := newProgress(c.Logger)
	l, err := c.loadLayout(path)
	if err != nil {
		return nil, nil, err
	}
	tree, err := l.Build()
	if err != nil {
		return nil, nil, err
	}
	prog.done("Built " + path)
	return l, tree, nil
}

// loadNavigator builds a navigator over the layout at path, logging through
// the CLI logger.
func (c *CLI) loadNavigator(path string) (*nav.Navigator, error) {
	_, tree, err := c.loadTree(path)
	if err != nil {
		return nil, err
	}
	return nav.NewNavigator(tree, nav.WithLogger(c.Logger))
}

// treeStats counts the layouts, elements and growable layouts of tree.
func treeStats(tree *nav.Tree) (layouts, elements, growable int) {
	for id := nav.NodeID(0); int(id) < tree.Len(); id++ {
		layouts++
		if tree.Growable(id) {
			growable++
		}
		for _, o := range tree.Occupants(id) {
			if _, ok := nav.AsElement(o); ok {
				elements++
			}
		}
	}
	return layouts, elements, growable
}
