package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
)

func newPullCmd(o *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace the local dataset with the remote bin",
		Long: `Downloads the bin and replaces the local dataset with it, e.g. on a new
device. Refuses while local changes are not synced unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				d, err := a.Services.Cloud.Restore(ctx, force)
				if err != nil {
					return fmt.Errorf("pull: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %d entries.\n", len(d.Entries))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "drop unsynced local changes")

	return cmd
}
