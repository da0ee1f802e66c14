package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/babblewitz/internal/app"
)

func (c *CLI) newSyncAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-assets",
		Short: "Download the save files used by performance tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dest, _ := cmd.Flags().GetString("dest")
			if !cmd.Flags().Changed("dest") {
				dest = c.v.GetString("saves-dir")
			}
			return c.app.SyncAssets(cmd.Context(), dest)
		},
	}
	cmd.Flags().String("dest", app.DefaultSavesDir, "Directory to copy the save files into")
	return cmd
}
