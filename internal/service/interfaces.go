package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/fit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=BinServiceWrapper

// BinService is the bin server business layer. Every call is scoped to the
// owner fingerprint of the calling key.
type BinService interface {
	Create(ctx context.Context, owner, name string, private bool, record json.RawMessage) (models.Bin, error)
	Get(ctx context.Context, id, owner string) (models.Bin, error)
	Update(ctx context.Context, id, owner string, record json.RawMessage) (models.Bin, error)
	Delete(ctx context.Context, id, owner string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BinServiceWrapper defines middleware composition for BinService.
// Implementations wrap an existing BinService to add behavior such as
// logging or validating.
type BinServiceWrapper interface {
	Wrap(BinService) BinService // returns a decorated BinService applying additional behavior
}
