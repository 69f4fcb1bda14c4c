package client

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/fit-sync/internal/adapter"
	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/service"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/internal/workers"
	"github.com/MKhiriev/fit-sync/models"
)

// App is the client runtime: local store, remote adapter and the services
// built on them.
type App struct {
	Services *service.ClientServices

	storages *store.ClientStorages
	remote   adapter.RemoteStore

	logger *logger.Logger
}

// NewApp opens the local store, restores the saved cloud credentials and
// starts the sync engine. Pending changes from a previous run are queued for
// an immediate attempt.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewJSONBinAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	a := &App{
		Services: service.NewClientServices(storages.Local, remote, *cfg, logger),
		storages: storages,
		remote:   remote,
		logger:   logger,
	}

	if err = a.Services.Cloud.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("load cloud settings: %w", err)
	}
	if err = a.Services.SyncEngine.Start(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("start sync engine: %w", err)
	}

	return a, nil
}

// Flush runs the sync tasks that are already due, i.e. the immediate attempt
// scheduled by a local change, and returns the resulting state. Retries
// scheduled for later stay queued and are resumed by the next start.
func (a *App) Flush(ctx context.Context) models.SyncState {
	a.Services.Queue.RunDue(ctx, service.SystemClock().Now())
	return a.Services.SyncEngine.Status()
}

// Run serves the sync task queue and the connectivity monitor until ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("bin_id", a.remote.BinID()).Msg("sync daemon started")

	err := workers.NewWorkers(
		a.Services.Queue,
		a.Services.Connectivity,
		workers.WorkerFunc(a.logStatus),
	).Run(ctx)

	a.logger.Info().Msg("sync daemon stopped")
	return err
}

func (a *App) logStatus(ctx context.Context) error {
	states, unsubscribe := a.Services.SyncEngine.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-states:
			if !ok {
				return nil
			}
			a.stateEvent(s).
				Str("status", string(s.Status)).
				Int("pending", s.PendingChangeCount).
				Int("attempt", s.Attempt).
				Str("last_error", s.LastError).
				Msg("sync state")
		}
	}
}

func (a *App) stateEvent(s models.SyncState) *zerolog.Event {
	if s.Status == models.StatusError {
		return a.logger.Warn()
	}
	return a.logger.Info()
}

// Close stops the engine and closes the local store.
func (a *App) Close() {
	a.Services.SyncEngine.Close()
	a.Services.Connectivity.Stop()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Close").Msg("close local storage")
	}
}
