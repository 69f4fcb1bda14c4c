package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
)

var errNotConfirmed = errors.New("refusing to reset the remote bin without --yes")

func newResetRemoteCmd(o *options) *cobra.Command {
	var deleteBin, yes bool

	cmd := &cobra.Command{
		Use:   "reset-remote",
		Short: "Empty or delete the remote bin",
		Long: `Overwrites the remote bin with an empty dataset. With --delete the bin
is deleted and forgotten; run 'fitsync setup' again to create a new one.
The local dataset is not touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				if err := a.Services.Cloud.ResetRemote(ctx, deleteBin); err != nil {
					return fmt.Errorf("reset remote: %w", err)
				}
				if deleteBin {
					fmt.Fprintln(cmd.OutOrStdout(), "Remote bin deleted.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Remote bin emptied.")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&deleteBin, "delete", false, "delete the bin instead of emptying it")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm")

	return cmd
}
