package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sourcehook/internal/app"
)

func (c *CLI) newRendererCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renderer [files...]",
		Short: "Initialize a renderer from the host process and load files through it",
		Long: "Run the second process: fetch the compilation context from the host process\n" +
			"started by serve, install the loader hook and print each file as loaded through it.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			readOnly, _ := cmd.Flags().GetBool("read-only")
			return c.app.Renderer(cmd.Context(), app.RendererOptions{
				ReadOnly: readOnly,
				Load:     args,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().Bool("read-only", false, "Load only precompiled artifacts")
	return cmd
}
