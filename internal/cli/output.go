package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/models"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printState(w io.Writer, s models.SyncState) {
	fmt.Fprintf(w, "Status:  %s\n", s.Status)
	fmt.Fprintf(w, "Pending: %d\n", s.PendingChangeCount)
	if s.LastSyncedAt != nil {
		fmt.Fprintf(w, "Synced:  %s\n", s.LastSyncedAt.Local().Format(time.RFC3339))
	} else {
		fmt.Fprintln(w, "Synced:  never")
	}
	if s.LastError != "" {
		fmt.Fprintf(w, "Error:   %s\n", s.LastError)
	}
	if s.NextRetry != nil {
		fmt.Fprintf(w, "Retry:   #%d at %s (backoff %s)\n",
			s.NextRetry.AttemptNumber, s.NextRetry.ScheduledAt.Local().Format(time.RFC3339), s.NextRetry.Backoff)
	}
}

// printSaved is printed by every command that records a change.
func printSaved(w io.Writer, s models.SyncState) {
	switch s.Status {
	case models.StatusIdle:
		fmt.Fprintln(w, "Saved and synced.")
	case models.StatusOffline:
		fmt.Fprintf(w, "Saved locally. Offline, %d change(s) waiting.\n", s.PendingChangeCount)
	case models.StatusError:
		fmt.Fprintf(w, "Saved locally. Sync failed: %s\n", s.LastError)
	default:
		fmt.Fprintf(w, "Saved locally. %d change(s) waiting to sync.\n", s.PendingChangeCount)
	}
}

func printEntries(w io.Writer, entries []models.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-9s %s  %s", e.ID, e.Type, e.LoggedAt.Local().Format("2006-01-02 15:04"), formatValues(e.Values))
		if e.Note != "" {
			fmt.Fprintf(w, "  %q", e.Note)
		}
		fmt.Fprintln(w)
	}
}

func formatValues(values map[string]float64) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%g", k, values[k]))
	}
	return strings.Join(parts, " ")
}

// anyChanged reports whether one of the named flags was set on the command line.
func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
