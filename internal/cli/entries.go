package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
	"github.com/MKhiriev/fit-sync/models"
)

func newEntriesCmd(o *options) *cobra.Command {
	var (
		kind   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List logged entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				d, err := a.Services.Dataset.Snapshot(ctx)
				if err != nil {
					return err
				}

				entries := d.Entries
				if kind != "" {
					t, ok := entryTypes[kind]
					if !ok {
						return fmt.Errorf("unknown entry type %q", kind)
					}
					entries = filterEntries(entries, t)
				}

				if asJSON {
					return printJSON(cmd.OutOrStdout(), entries)
				}
				printEntries(cmd.OutOrStdout(), entries)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", "", "only entries of this type")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <entry-id>",
		Aliases: []string{"delete"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				if err := a.Services.Dataset.DeleteEntry(ctx, args[0]); err != nil {
					return err
				}
				printSaved(cmd.OutOrStdout(), a.Flush(ctx))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every entry, the profile and the goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				if err := a.Services.Dataset.Reset(ctx); err != nil {
					return err
				}
				printSaved(cmd.OutOrStdout(), a.Flush(ctx))
				return nil
			})
		},
	})

	return cmd
}

func filterEntries(entries []models.Entry, t models.EntryType) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
