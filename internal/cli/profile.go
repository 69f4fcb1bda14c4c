package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
	"github.com/MKhiriev/fit-sync/models"
)

func newProfileCmd(o *options) *cobra.Command {
	var p models.Profile

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or set the body profile",
		Long:  "Without flags the current profile is printed. With flags the profile is replaced.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				if !anyChanged(cmd, "name", "sex", "birth-year", "height", "activity") {
					d, err := a.Services.Dataset.Snapshot(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), d.Profile)
				}

				if err := a.Services.Dataset.SetProfile(ctx, p); err != nil {
					return err
				}
				printSaved(cmd.OutOrStdout(), a.Flush(ctx))
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.Name, "name", "", "display name")
	f.StringVar(&p.Sex, "sex", "", "sex")
	f.IntVar(&p.BirthYear, "birth-year", 0, "year of birth")
	f.Float64Var(&p.HeightCm, "height", 0, "height in cm")
	f.StringVar(&p.ActivityLevel, "activity", "", "activity level, e.g. sedentary, moderate, active")

	return cmd
}
