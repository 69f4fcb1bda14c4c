package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/fit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BinRepository persists bins in Postgres. Every lookup is scoped by owner;
// a bin owned by someone else is reported as [ErrBinNotFound].
type BinRepository interface {
	Create(ctx context.Context, bin models.Bin) (models.Bin, error)
	Get(ctx context.Context, id, owner string) (models.Bin, error)
	Update(ctx context.Context, id, owner string, record json.RawMessage) (models.Bin, error)
	Delete(ctx context.Context, id, owner string) error
}

// BinCache is a read-through cache of bins keyed by id.
type BinCache interface {
	Get(ctx context.Context, id string) (models.Bin, error)
	Set(ctx context.Context, bin models.Bin) error
	Invalidate(ctx context.Context, id string) error
}

// BinStorage is what the bin service talks to: the repository fronted by
// the cache.
type BinStorage interface {
	BinRepository
	Ping(ctx context.Context) error
}
