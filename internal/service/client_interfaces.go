package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fit-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Clock is the time source of the sync engine and its task queue.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// SyncEngine mirrors the local dataset to the remote bin.
//
// Local changes are written to the local store first and never wait on the
// network. Sync attempts run one at a time on the task queue; failed ones are
// retried with exponential backoff up to a bounded number of attempts. The
// current [models.SyncState] is published to subscribers on every change.
type SyncEngine interface {
	// Start restores the pending count and last sync time from the local
	// store and schedules an attempt when anything is pending.
	Start(ctx context.Context) error

	// Reload re-reads the pending count and last sync time, e.g. after the
	// local snapshot was replaced.
	Reload(ctx context.Context) error

	// RecordLocalChange validates m and applies it to the local store. Only
	// validation and local storage errors are returned; sync failures show
	// up in Status.
	RecordLocalChange(ctx context.Context, m models.Mutation) error

	// AttemptSync pushes the full local dataset to the remote bin. It is a
	// no-op when nothing is pending or another attempt is in flight. The
	// returned error is the classified failure of this attempt.
	AttemptSync(ctx context.Context) error

	// ScheduleRetry queues the retry that follows failure number attempt.
	// Past the retry bound it moves the engine to Error instead.
	ScheduleRetry(attempt int)

	// TriggerSync is a manual retry: it resets the attempt counter and
	// schedules an immediate attempt.
	TriggerSync()

	// SetConnectivity reports a reachability change. Repeating the current
	// value is a no-op; only an offline to online transition resets the
	// attempt counter.
	SetConnectivity(online bool)

	Status() models.SyncState
	Subscribe() (<-chan models.SyncState, func())

	// Close cancels the pending retry. No attempts are scheduled afterwards.
	Close()
}

// ConnectivityListener receives reachability changes.
type ConnectivityListener interface {
	SetConnectivity(online bool)
}

// ConnectivityMonitor periodically probes the remote store.
type ConnectivityMonitor interface {
	// Run probes every interval until ctx is cancelled.
	Run(ctx context.Context) error

	// Start launches Run in the background. Any previously running monitor
	// is stopped first.
	Start(ctx context.Context)

	// Stop cancels the background monitor and waits for it to exit.
	Stop()
}

// CloudService manages the link between the local store and the remote bin.
type CloudService interface {
	// Load restores the persisted API key and bin id into the remote store.
	Load(ctx context.Context) error

	// Setup validates apiKey, creates the bin from the local dataset unless
	// one is already configured, and persists the credentials.
	Setup(ctx context.Context, apiKey string) (models.BinMetadata, error)

	// Restore replaces the local dataset with the remote one. Unsynced local
	// changes are refused with [ErrPendingChanges] unless force is set.
	Restore(ctx context.Context, force bool) (models.Dataset, error)

	// ResetRemote overwrites the bin with an empty dataset. With deleteBin
	// the bin is deleted and forgotten instead.
	ResetRemote(ctx context.Context, deleteBin bool) error
}

// DatasetService builds typed mutations and records them through the engine.
type DatasetService interface {
	SetProfile(ctx context.Context, p models.Profile) error
	SetGoals(ctx context.Context, g models.Goals) error
	AddEntry(ctx context.Context, e models.Entry) (models.Entry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	Reset(ctx context.Context) error
	Snapshot(ctx context.Context) (models.Dataset, error)
}
