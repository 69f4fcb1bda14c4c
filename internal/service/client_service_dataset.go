package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/internal/utils"
	"github.com/MKhiriev/fit-sync/models"
)

type datasetService struct {
	engine SyncEngine
	local  store.LocalStorage
	ids    *utils.UUIDGenerator
	clock  Clock

	logger *logger.Logger
}

func NewDatasetService(engine SyncEngine, local store.LocalStorage, clock Clock, logger *logger.Logger) DatasetService {
	if clock == nil {
		clock = SystemClock()
	}
	return &datasetService{
		engine: engine,
		local:  local,
		ids:    utils.NewUUIDGenerator(),
		clock:  clock,
		logger: logger,
	}
}

func (s *datasetService) SetProfile(ctx context.Context, p models.Profile) error {
	return s.record(ctx, models.SetProfile, p)
}

func (s *datasetService) SetGoals(ctx context.Context, g models.Goals) error {
	return s.record(ctx, models.SetGoals, g)
}

// AddEntry assigns an id and a logged_at time when they are missing.
func (s *datasetService) AddEntry(ctx context.Context, e models.Entry) (models.Entry, error) {
	if e.ID == "" {
		e.ID = s.ids.Generate()
	}
	if e.LoggedAt.IsZero() {
		e.LoggedAt = s.clock.Now().UTC()
	}

	if err := s.record(ctx, models.AddEntry, e); err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

func (s *datasetService) DeleteEntry(ctx context.Context, entryID string) error {
	d, err := s.local.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	if d.FindEntry(entryID) < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}

	return s.record(ctx, models.DeleteEntry, models.DeleteEntryPayload{EntryID: entryID})
}

func (s *datasetService) Reset(ctx context.Context) error {
	return s.record(ctx, models.ResetDataset, nil)
}

func (s *datasetService) Snapshot(ctx context.Context) (models.Dataset, error) {
	d, err := s.local.LoadSnapshot(ctx)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	return d, nil
}

func (s *datasetService) record(ctx context.Context, kind models.MutationKind, payload any) error {
	m, err := models.NewMutation(s.ids.Generate(), kind, payload, s.clock.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}

	if err = s.engine.RecordLocalChange(ctx, m); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Str("mutation_id", m.ID).Str("kind", string(kind)).Msg("local change recorded")
	return nil
}
