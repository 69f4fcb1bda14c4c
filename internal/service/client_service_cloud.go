package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/fit-sync/internal/adapter"
	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/internal/validators"
	"github.com/MKhiriev/fit-sync/models"
)

// DefaultBinName is the X-Bin-Name of bins created by Setup.
const DefaultBinName = "fitsync"

type cloudService struct {
	local     store.LocalStorage
	remote    adapter.RemoteStore
	engine    SyncEngine
	validator validators.Validator
	clock     Clock

	// app carries credentials given through configuration.
	app config.ClientApp

	logger *logger.Logger
}

func NewCloudService(local store.LocalStorage, remote adapter.RemoteStore, engine SyncEngine, app config.ClientApp, clock Clock, logger *logger.Logger) CloudService {
	if clock == nil {
		clock = SystemClock()
	}
	return &cloudService{
		local:     local,
		remote:    remote,
		engine:    engine,
		app:       app,
		validator: validators.NewMutationValidator(),
		clock:     clock,
		logger:    logger,
	}
}

// Load implements CloudService. Credentials from configuration take
// precedence over the persisted ones.
func (s *cloudService) Load(ctx context.Context) error {
	apiKey, err := s.setting(ctx, store.SettingAPIKey)
	if err != nil {
		return err
	}
	binID, err := s.setting(ctx, store.SettingBinID)
	if err != nil {
		return err
	}

	if s.app.APIKey != "" {
		apiKey = s.app.APIKey
	}
	if s.app.BinID != "" {
		binID = s.app.BinID
	}
	s.remote.SetCredentials(apiKey, binID)

	s.logger.Debug().Bool("configured", s.remote.Configured()).Str("bin_id", binID).Msg("cloud credentials loaded")
	return nil
}

// Setup implements CloudService.
func (s *cloudService) Setup(ctx context.Context, apiKey string) (models.BinMetadata, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateAPIKey(apiKey); err != nil {
		return models.BinMetadata{}, fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	}

	prevKey, err := s.setting(ctx, store.SettingAPIKey)
	if err != nil {
		return models.BinMetadata{}, err
	}
	binID := s.remote.BinID()
	s.remote.SetCredentials(apiKey, binID)

	meta := models.BinMetadata{ID: binID, Private: true}
	if binID == "" {
		dataset, err := s.local.LoadSnapshot(ctx)
		if err != nil {
			s.remote.SetCredentials(prevKey, "")
			return models.BinMetadata{}, fmt.Errorf("%w: %w", ErrLocalStore, err)
		}

		meta, err = s.remote.Create(ctx, DefaultBinName, dataset)
		if err != nil {
			log.Err(err).Str("func", "cloudService.Setup").Msg("failed to create remote bin")
			s.remote.SetCredentials(prevKey, "")
			return models.BinMetadata{}, mapAdapterError(err)
		}
	} else if _, err = s.remote.Read(ctx); err != nil {
		log.Err(err).Str("func", "cloudService.Setup").Str("bin_id", binID).Msg("failed to access configured bin")
		s.remote.SetCredentials(prevKey, binID)
		return models.BinMetadata{}, mapAdapterError(err)
	}

	if err = s.local.SetSetting(ctx, store.SettingAPIKey, apiKey); err != nil {
		return models.BinMetadata{}, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	if err = s.local.SetSetting(ctx, store.SettingBinID, meta.ID); err != nil {
		return models.BinMetadata{}, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	log.Info().Str("bin_id", meta.ID).Msg("cloud sync configured")
	s.engine.TriggerSync()
	return meta, nil
}

// Restore implements CloudService.
func (s *cloudService) Restore(ctx context.Context, force bool) (models.Dataset, error) {
	log := logger.FromContext(ctx)

	if !s.remote.Configured() {
		return models.Dataset{}, ErrCloudNotConfigured
	}

	pending, err := s.local.PendingCount(ctx)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	if pending > 0 && !force {
		return models.Dataset{}, fmt.Errorf("%w: %d pending", ErrPendingChanges, pending)
	}

	raw, err := s.remote.Read(ctx)
	if err != nil {
		log.Err(err).Str("func", "cloudService.Restore").Msg("failed to read remote bin")
		return models.Dataset{}, mapAdapterError(err)
	}

	dataset, err := s.decodeDataset(ctx, raw)
	if err != nil {
		log.Err(err).Str("func", "cloudService.Restore").Msg("remote dataset rejected")
		return models.Dataset{}, err
	}

	// a change recorded during the read makes the replace fail unless force
	if err = s.local.ReplaceSnapshot(ctx, dataset, force); err != nil {
		if errors.Is(err, store.ErrPendingChanges) {
			return models.Dataset{}, fmt.Errorf("%w: changed during restore", ErrPendingChanges)
		}
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	if err = s.engine.Reload(ctx); err != nil {
		return models.Dataset{}, err
	}

	log.Info().Int("entries", len(dataset.Entries)).Bool("force", force).Msg("local dataset restored from cloud")
	return dataset, nil
}

// ResetRemote implements CloudService. JSONBin refuses blank bins, so the
// bin is reset to an empty dataset rather than emptied.
func (s *cloudService) ResetRemote(ctx context.Context, deleteBin bool) error {
	log := logger.FromContext(ctx)

	if !s.remote.Configured() {
		return ErrCloudNotConfigured
	}

	if deleteBin {
		binID := s.remote.BinID()
		if err := s.remote.Delete(ctx); err != nil {
			log.Err(err).Str("func", "cloudService.ResetRemote").Str("bin_id", binID).Msg("failed to delete remote bin")
			return mapAdapterError(err)
		}
		if err := s.local.DeleteSetting(ctx, store.SettingBinID); err != nil {
			return fmt.Errorf("%w: %w", ErrLocalStore, err)
		}
		log.Info().Str("bin_id", binID).Msg("remote bin deleted")
		return nil
	}

	empty := models.NewDataset()
	empty.UpdatedAt = s.clock.Now().UTC()
	if err := s.remote.Update(ctx, empty); err != nil {
		log.Err(err).Str("func", "cloudService.ResetRemote").Msg("failed to reset remote bin")
		return mapAdapterError(err)
	}

	log.Info().Msg("remote bin reset")
	return nil
}

func (s *cloudService) decodeDataset(ctx context.Context, raw json.RawMessage) (models.Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var dataset models.Dataset
	if err := dec.Decode(&dataset); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if err := s.validator.Validate(ctx, dataset); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	return dataset, nil
}

func (s *cloudService) setting(ctx context.Context, key string) (string, error) {
	v, err := s.local.GetSetting(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	return v, nil
}
