package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
	"github.com/MKhiriev/fit-sync/models"
)

func newGoalsCmd(o *options) *cobra.Command {
	var g models.Goals

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or set daily and long-term goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				if !anyChanged(cmd, "calories", "protein", "water", "target-weight", "weekly-workouts") {
					d, err := a.Services.Dataset.Snapshot(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), d.Goals)
				}

				if err := a.Services.Dataset.SetGoals(ctx, g); err != nil {
					return err
				}
				printSaved(cmd.OutOrStdout(), a.Flush(ctx))
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&g.DailyCalories, "calories", 0, "daily calories")
	f.IntVar(&g.DailyProteinG, "protein", 0, "daily protein in grams")
	f.IntVar(&g.DailyWaterMl, "water", 0, "daily water in ml")
	f.Float64Var(&g.TargetWeightKg, "target-weight", 0, "target weight in kg")
	f.IntVar(&g.WeeklyWorkouts, "weekly-workouts", 0, "workouts per week")

	return cmd
}
