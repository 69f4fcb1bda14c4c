package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
	"github.com/MKhiriev/fit-sync/models"
)

var errSyncFailed = errors.New("sync failed")

func newSyncCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push pending changes now",
		Long: `Resets the retry counter and makes one sync attempt. Use it after a
sync gave up or to push without waiting for the next retry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				a.Services.SyncEngine.TriggerSync()
				s := a.Flush(ctx)
				printState(cmd.OutOrStdout(), s)

				if s.Status == models.StatusError {
					return errSyncFailed
				}
				return nil
			})
		},
	}
}
