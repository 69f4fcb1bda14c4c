package store

import (
	"context"
	"time"

	"github.com/MKhiriev/fit-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the client settings table.
const (
	SettingAPIKey       = "api_key"
	SettingBinID        = "bin_id"
	SettingLastSyncedAt = "last_synced_at"
)

// LocalStorage is the durable on-device store: the dataset snapshot, the
// queue of mutations not yet mirrored to the remote bin and a small
// key/value settings table.
type LocalStorage interface {
	// LoadSnapshot returns the current dataset. An empty dataset is returned
	// when nothing has been written yet.
	LoadSnapshot(ctx context.Context) (models.Dataset, error)

	// ApplyMutation applies m to the snapshot and appends it to the pending
	// queue in one transaction. It returns the new snapshot and the number of
	// pending mutations after the insert.
	ApplyMutation(ctx context.Context, m models.Mutation) (models.Dataset, int, error)

	// LoadSyncBatch returns the snapshot together with the ids of the pending
	// mutations it already contains, read in one consistent view.
	LoadSyncBatch(ctx context.Context) (models.Dataset, []string, error)

	PendingCount(ctx context.Context) (int, error)

	// AckPending removes exactly the given mutations from the queue and
	// returns how many remain.
	AckPending(ctx context.Context, ids []string) (int, error)

	// ReplaceSnapshot overwrites the snapshot. With dropPending the pending
	// queue is discarded in the same transaction; without it the call fails
	// with ErrPendingChanges while anything is pending.
	ReplaceSnapshot(ctx context.Context, d models.Dataset, dropPending bool) error

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	LastSyncedAt(ctx context.Context) (*time.Time, error)
	SetLastSyncedAt(ctx context.Context, at time.Time) error
}
