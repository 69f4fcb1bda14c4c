package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
	"github.com/MKhiriev/fit-sync/models"
)

var entryTypes = map[string]models.EntryType{
	"workout": models.Workout,
	"meal":    models.Meal,
	"weigh":   models.WeighIn,
	"weighin": models.WeighIn,
	"water":   models.WaterIntake,
}

func newLogCmd(o *options) *cobra.Command {
	var (
		values []string
		note   string
		at     string
	)

	cmd := &cobra.Command{
		Use:   "log <workout|meal|weigh|water>",
		Short: "Log an entry",
		Example: `  fitsync log workout --value minutes=45 --value kcal=380 --note "5k run"
  fitsync log water --value ml=250
  fitsync log weigh --value kg=71.4 --at 2026-03-14T07:30:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := buildEntry(args[0], values, note, at)
			if err != nil {
				return err
			}

			return o.withApp(cmd, func(ctx context.Context, a *client.App) error {
				saved, err := a.Services.Dataset.AddEntry(ctx, entry)
				if err != nil {
					return fmt.Errorf("log %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s\n", saved.Type, saved.ID)
				printSaved(cmd.OutOrStdout(), a.Flush(ctx))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVarP(&values, "value", "v", nil, "measurement as name=number, repeatable")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-form note")
	cmd.Flags().StringVar(&at, "at", "", "time of the entry (RFC 3339), defaults to now")

	return cmd
}

func buildEntry(kind string, values []string, note, at string) (models.Entry, error) {
	t, ok := entryTypes[strings.ToLower(kind)]
	if !ok {
		return models.Entry{}, fmt.Errorf("unknown entry type %q", kind)
	}

	e := models.Entry{Type: t, Note: note}
	if len(values) > 0 {
		e.Values = make(map[string]float64, len(values))
	}
	for _, kv := range values {
		name, raw, found := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return models.Entry{}, fmt.Errorf("value %q: expected name=number", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return models.Entry{}, fmt.Errorf("value %q: %w", kv, err)
		}
		e.Values[name] = v
	}

	if at != "" {
		ts, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return models.Entry{}, fmt.Errorf("--at: %w", err)
		}
		e.LoggedAt = ts.UTC()
	}

	return e, nil
}
