package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/internal/utils"
	"github.com/MKhiriev/fit-sync/models"
)

const (
	createAttempts = 3
	createBackoff  = 20 * time.Millisecond
)

type binService struct {
	storage store.BinStorage
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewBinService(storage store.BinStorage, logger *logger.Logger) BinService {
	return &binService{
		storage: storage,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// Create stores a new bin under a fresh id. An id collision or a transient
// storage failure is retried a few times with a new id.
func (s *binService) Create(ctx context.Context, owner, name string, private bool, record json.RawMessage) (models.Bin, error) {
	log := logger.FromContext(ctx)

	var created models.Bin
	b := retry.WithMaxRetries(createAttempts-1, retry.NewConstant(createBackoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		bin, err := s.storage.Create(ctx, models.Bin{
			ID:      s.ids.GenerateCompact(),
			Owner:   owner,
			Name:    name,
			Private: private,
			Record:  record,
		})
		if errors.Is(err, store.ErrBinAlreadyExists) || errors.Is(err, store.ErrStorageUnavailable) {
			log.Warn().Err(err).Msg("bin create failed, retrying")
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		created = bin
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "binService.Create").Msg("failed to create bin")
		return models.Bin{}, fmt.Errorf("create bin: %w", err)
	}

	log.Info().Str("bin_id", created.ID).Int("size", len(record)).Msg("bin created")
	return created, nil
}

func (s *binService) Get(ctx context.Context, id, owner string) (models.Bin, error) {
	return s.storage.Get(ctx, id, owner)
}

func (s *binService) Update(ctx context.Context, id, owner string, record json.RawMessage) (models.Bin, error) {
	bin, err := s.storage.Update(ctx, id, owner, record)
	if err != nil {
		return models.Bin{}, err
	}
	logger.FromContext(ctx).Debug().Str("bin_id", id).Int("size", len(record)).Msg("bin updated")
	return bin, nil
}

func (s *binService) Delete(ctx context.Context, id, owner string) error {
	if err := s.storage.Delete(ctx, id, owner); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("bin_id", id).Msg("bin deleted")
	return nil
}
