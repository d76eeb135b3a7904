package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/focusgrid/pkg/server"
)

// serveCommand creates the serve command for driving a navigator over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a navigator over HTTP",
		Long: `Serve a navigator over HTTP until interrupted.

  POST /navigate   {"directive": "down"}
  POST /jump       {"focus_id": "hades"}
  POST /items/...  insert into a growable layout
  GET  /focus, /tree, /grid/..., /diagram?format=svg

Requests are logged at debug level (-v).`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLayoutFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path, addr string) error {
	n, err := c.loadNavigator(path)
	if err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	printInfo("Serving %s on %s", path, StyleHighlight.Render("http://"+addr))
	printNextStep("Try", `curl -X POST http://`+addr+`/navigate -d '{"directive": "down"}'`)
	printNewline()

	return server.New(n, server.WithLogger(logger)).ListenAndServe(ctx, addr)
}
