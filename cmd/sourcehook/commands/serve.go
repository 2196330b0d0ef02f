package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sourcehook/internal/app"
	"go.trai.ch/sourcehook/internal/ui/output"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [-- renderer-args...]",
		Short: "Run the host process and answer intercepted resource requests",
		Long: "Run the host process: intercepted resource requests are compiled on demand\n" +
			"and the compilation context is published to renderers over the handshake socket.\n" +
			"Arguments after -- are passed to the spawned renderer.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			readOnly, _ := cmd.Flags().GetBool("read-only")
			listen, _ := cmd.Flags().GetString("listen")
			spawn, _ := cmd.Flags().GetBool("spawn-renderer")
			trace, _ := cmd.Flags().GetBool("trace")

			p := output.NewPrinter(cmd.OutOrStdout())
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Overrides: app.Overrides{
					ReadOnly: readOnly,
					Listen:   listen,
				},
				SpawnRenderer: spawn,
				RendererArgs:  args,
				Trace:         trace,
				Ready: func(addr string) {
					p.Success("listening on http://" + addr)
				},
			})
		},
	}
	cmd.Flags().Bool("read-only", false, "Serve only precompiled artifacts from the cache")
	cmd.Flags().StringP("listen", "l", "", "Address for the resource transport (overrides the config file)")
	cmd.Flags().Bool("spawn-renderer", false, "Start a renderer process once the handshake is published")
	cmd.Flags().Bool("trace", false, "Log a span for every dispatched request (needs --verbose)")
	return cmd
}
