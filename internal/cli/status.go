package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
)

func newStatusCmd(o *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				s := a.Services.SyncEngine.Status()
				if asJSON {
					return printJSON(cmd.OutOrStdout(), s)
				}
				printState(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
