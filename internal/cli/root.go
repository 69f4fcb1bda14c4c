// Package cli implements the fitsync command line.
//
// Every command opens the local store, records or reads what it needs and
// exits. Commands that change the dataset write locally first and then make
// one immediate sync attempt; `fitsync run` keeps retrying in the background.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/fit-sync/internal/client"
	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/models"
)

const clientRole = "fitsync"

// options is shared by all commands of one root command.
type options struct {
	fs    afero.Fs
	build models.AppBuildInfo

	// flags is the command-line layer of the config merge. Zero fields do
	// not override lower layers.
	flags config.StructuredConfig
}

// NewRootCmd builds the fitsync command tree. fs is used for config files.
func NewRootCmd(fs afero.Fs, build models.AppBuildInfo) *cobra.Command {
	o := &options{fs: fs, build: build}

	root := &cobra.Command{
		Use:   "fitsync",
		Short: "Offline-first fitness log with JSONBin cloud sync",
		Long: `fitsync keeps your workouts, meals, weigh-ins and goals in a local
database and mirrors them to a JSONBin bin whenever the network allows.

Every change is saved locally first. Failed syncs are retried with
exponential backoff; run 'fitsync run' to keep a sync daemon going.`,
		Version:       build.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(build.String())

	pf := root.PersistentFlags()
	pf.StringVarP(&o.flags.ConfigFilePath, "config", "c", "", "config file (json, yaml or toml)")
	pf.StringVar(&o.flags.Client.DB.DSN, "db", "", "local database file")
	pf.StringVar(&o.flags.Adapter.BaseURL, "base-url", "", "JSONBin-compatible API root")
	pf.StringVar(&o.flags.App.LogFile, "log-file", "", "log file")
	pf.StringVar(&o.flags.App.LogLevel, "log-level", "", "log level")

	root.AddCommand(
		newSetupCmd(o),
		newLogCmd(o),
		newEntriesCmd(o),
		newProfileCmd(o),
		newGoalsCmd(o),
		newStatusCmd(o),
		newSyncCmd(o),
		newPullCmd(o),
		newResetRemoteCmd(o),
		newRunCmd(o),
		newVersionCmd(o),
	)

	return root
}

// Execute runs the command tree against the real filesystem.
func Execute(ctx context.Context, build models.AppBuildInfo) {
	if err := NewRootCmd(afero.NewOsFs(), build).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		os.Exit(1)
	}
}

// withApp loads the client config, opens the app for the duration of fn and
// closes it afterwards.
func (o *options) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *client.App) error) error {
	cfg, err := config.GetClientConfig(o.fs, &o.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.App.LogFile).WithLevel(cfg.App.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.WithContext(ctx)

	a, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
