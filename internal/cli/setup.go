package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
)

func newSetupCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "setup <api-key>",
		Short: "Connect fitsync to a JSONBin account",
		Long: `Validates the key, creates a private bin holding the current local
dataset (unless a bin is already configured) and stores both locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				meta, err := a.Services.Cloud.Setup(ctx, args[0])
				if err != nil {
					return fmt.Errorf("setup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Connected to bin %s\n", meta.ID)
				return nil
			})
		},
	}
}
