// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/models"
)

// binStorage is the default implementation of [BinStorage].
//
// Reads go to the cache first and fall back to the repository, filling the
// cache on the way out. Writes go to the repository and then invalidate the
// cached copy. Cache failures are logged and never fail the request.
type binStorage struct {
	// repository provides all relational operations against the "bins" table.
	repository BinRepository

	// cache is optional. When nil every read hits the repository.
	cache BinCache

	db     *DB
	logger *logger.Logger
}

// NewBinStorage constructs a [BinStorage]. cache may be nil.
func NewBinStorage(db *DB, repository BinRepository, cache BinCache, logger *logger.Logger) BinStorage {
	logger.Debug().Bool("cache", cache != nil).Msg("creating bin storage")

	return &binStorage{
		repository: repository,
		cache:      cache,
		db:         db,
		logger:     logger,
	}
}

func (s *binStorage) Create(ctx context.Context, bin models.Bin) (models.Bin, error) {
	return s.repository.Create(ctx, bin)
}

// Get serves from the cache when the cached bin belongs to owner.
// A cached bin of another owner is treated as not found without touching
// the repository.
func (s *binStorage) Get(ctx context.Context, id, owner string) (models.Bin, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		switch {
		case err == nil:
			if cached.Owner != owner {
				return models.Bin{}, ErrBinNotFound
			}
			log.Debug().Str("bin_id", id).Msg("bin served from cache")
			return cached, nil
		case !errors.Is(err, ErrCacheMiss):
			log.Warn().Err(err).Str("func", "*binStorage.Get").Str("bin_id", id).Msg("cache read failed")
		}
	}

	bin, err := s.repository.Get(ctx, id, owner)
	if err != nil {
		return models.Bin{}, err
	}

	if s.cache != nil {
		if err = s.cache.Set(ctx, bin); err != nil {
			log.Warn().Err(err).Str("func", "*binStorage.Get").Str("bin_id", id).Msg("cache fill failed")
		}
	}

	return bin, nil
}

func (s *binStorage) Update(ctx context.Context, id, owner string, record json.RawMessage) (models.Bin, error) {
	bin, err := s.repository.Update(ctx, id, owner, record)
	if err != nil {
		return models.Bin{}, err
	}
	s.invalidate(ctx, id)
	return bin, nil
}

func (s *binStorage) Delete(ctx context.Context, id, owner string) error {
	if err := s.repository.Delete(ctx, id, owner); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// Ping checks the database connection.
func (s *binStorage) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

func (s *binStorage) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*binStorage.invalidate").Str("bin_id", id).Msg("cache invalidation failed")
	}
}
