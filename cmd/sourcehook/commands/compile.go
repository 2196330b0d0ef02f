package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sourcehook/internal/app"
	"go.trai.ch/sourcehook/internal/ui/output"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [paths...]",
		Short: "Precompile sources into the artifact cache for read-only mode",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check, _ := cmd.Flags().GetBool("check")

			summary, err := c.app.Compile(cmd.Context(), app.CompileOptions{
				Paths: args,
				Check: check,
			})
			printSummary(output.NewPrinter(cmd.OutOrStdout()), summary, check)
			return err
		},
	}
	cmd.Flags().Bool("check", false, "Verify the cache is current instead of compiling")
	return cmd
}

func printSummary(p *output.Printer, s app.CompileSummary, check bool) {
	verb := "compiled"
	if check {
		verb = "up to date"
	}
	p.Success(fmt.Sprintf("%s: %s", verb, files(s.Compiled)))
	if s.Skipped > 0 {
		p.Skipped(fmt.Sprintf("served verbatim: %s", files(s.Skipped)))
	}
	if s.Failed > 0 {
		p.Failure(fmt.Sprintf("failed: %s", files(s.Failed)))
	}
}

func files(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
