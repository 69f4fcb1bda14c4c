package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
)

// Storages groups the bin server storage.
type Storages struct {
	BinStorage BinStorage

	db    *DB
	cache *RedisBinCache
}

// NewStorages connects to Postgres, applies the migrations and, when a
// Redis address is configured, puts a cache in front of the repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{db: db}

	var cache BinCache
	if cfg.Cache.RedisAddress != "" {
		s.cache, err = ConnectRedisBinCache(ctx, cfg.Cache)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		cache = s.cache
		logger.Info().Str("address", cfg.Cache.RedisAddress).Dur("ttl", cfg.Cache.TTL).Msg("bin cache enabled")
	}

	s.BinStorage = NewBinStorage(db, NewBinRepository(db, logger), cache, logger)
	return s, nil
}

func (s *Storages) Close() error {
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
