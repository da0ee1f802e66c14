package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/babblewitz/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build every implementation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := c.format()
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), app.BuildOptions{
				ImplsDir:       c.v.GetString("impls-dir"),
				Implementation: c.v.GetString("implementation"),
				Format:         format,
			})
		},
	}
}
