package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/mock"
	"github.com/MKhiriev/fit-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDatasetService_AddEntry(t *testing.T) {
	h := newEngineHarness(t, testSyncConfig())
	svc := NewDatasetService(h.engine, h.local, h.clock, logger.Nop())

	e, err := svc.AddEntry(h.ctx, models.Entry{Type: models.WaterIntake, Values: map[string]float64{"ml": 250}})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, h.clock.Now(), e.LoggedAt)

	snap, err := svc.Snapshot(h.ctx)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, e.ID, snap.Entries[0].ID)
	assert.Equal(t, 1, h.engine.Status().PendingChangeCount)
}

func TestDatasetService_AddEntry_Invalid(t *testing.T) {
	h := newEngineHarness(t, testSyncConfig())
	svc := NewDatasetService(h.engine, h.local, h.clock, logger.Nop())

	_, err := svc.AddEntry(h.ctx, models.Entry{Type: "nap"})
	assert.ErrorIs(t, err, ErrInvalidMutation)
	assert.Empty(t, h.local.pendingIDs())
}

func TestDatasetService_ProfileGoalsReset(t *testing.T) {
	h := newEngineHarness(t, testSyncConfig())
	svc := NewDatasetService(h.engine, h.local, h.clock, logger.Nop())

	require.NoError(t, svc.SetProfile(h.ctx, models.Profile{Name: "Ann", HeightCm: 170}))
	require.NoError(t, svc.SetGoals(h.ctx, models.Goals{DailyCalories: 2000, DailyWaterMl: 2500}))

	snap, err := svc.Snapshot(h.ctx)
	require.NoError(t, err)
	require.NotNil(t, snap.Profile)
	require.NotNil(t, snap.Goals)
	assert.Equal(t, "Ann", snap.Profile.Name)
	assert.Equal(t, 2500, snap.Goals.DailyWaterMl)

	require.NoError(t, svc.Reset(h.ctx))
	snap, err = svc.Snapshot(h.ctx)
	require.NoError(t, err)
	assert.Nil(t, snap.Profile)
	assert.Empty(t, snap.Entries)
	assert.Len(t, h.local.pendingIDs(), 3)
}

func TestDatasetService_DeleteEntry(t *testing.T) {
	h := newEngineHarness(t, testSyncConfig())
	svc := NewDatasetService(h.engine, h.local, h.clock, logger.Nop())

	e, err := svc.AddEntry(h.ctx, models.Entry{Type: models.Meal, Values: map[string]float64{"kcal": 600}})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteEntry(h.ctx, "missing"), ErrEntryNotFound)
	require.NoError(t, svc.DeleteEntry(h.ctx, e.ID))

	snap, err := svc.Snapshot(h.ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
}

func TestDatasetService_RecordsThroughEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockSyncEngine(ctrl)
	clock := newFakeClock()
	svc := NewDatasetService(engine, newMemLocalStore(), clock, logger.Nop())

	engine.EXPECT().RecordLocalChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.Mutation) error {
			assert.Equal(t, models.SetGoals, m.Kind)
			assert.NotEmpty(t, m.ID)
			assert.Equal(t, clock.Now(), m.CreatedAt)

			var g models.Goals
			require.NoError(t, json.Unmarshal(m.Payload, &g))
			assert.Equal(t, 4, g.WeeklyWorkouts)
			return nil
		})

	require.NoError(t, svc.SetGoals(context.Background(), models.Goals{WeeklyWorkouts: 4}))
}

func TestDatasetService_EngineErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockSyncEngine(ctrl)
	svc := NewDatasetService(engine, newMemLocalStore(), newFakeClock(), logger.Nop())

	engine.EXPECT().RecordLocalChange(gomock.Any(), gomock.Any()).Return(ErrLocalStore)

	assert.ErrorIs(t, svc.Reset(context.Background()), ErrLocalStore)
}
