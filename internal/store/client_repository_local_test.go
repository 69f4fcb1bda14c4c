package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/models"
)

func newLocalRepoMock(t *testing.T) (LocalStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	storeDB := &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
	return NewLocalRepository(storeDB, logger.Nop()), mock
}

func entryMutation(t *testing.T, id, entryID string) models.Mutation {
	t.Helper()
	m, err := models.NewMutation(id, models.AddEntry, models.Entry{
		ID:       entryID,
		Type:     models.Workout,
		LoggedAt: time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC),
		Values:   map[string]float64{"minutes": 45},
	}, time.Date(2026, 3, 14, 7, 1, 0, 0, time.UTC))
	require.NoError(t, err)
	return m
}

// ── sqlmock ──────────────────────────────────────────────────────────────────

func TestLocalRepository_LoadSnapshot_Empty(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshot)).WillReturnRows(sqlmock.NewRows([]string{"document"}))

	d, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, d.Entries)
	assert.Empty(t, d.Entries)
}

func TestLocalRepository_LoadSnapshot_Corrupt(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshot)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow("{not json"))

	_, err := repo.LoadSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestLocalRepository_ApplyMutation(t *testing.T) {
	repo, mock := newLocalRepoMock(t)
	m := entryMutation(t, "m-1", "e-1")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshot)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(`{"entries":[]}`))
	mock.ExpectExec(regexp.QuoteMeta(insertPendingChange)).
		WithArgs("m-1", string(models.AddEntry), string(m.Payload), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshot)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(countPendingChanges)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	d, pending, err := repo.ApplyMutation(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 3, pending)
	require.Len(t, d.Entries, 1)
	assert.Equal(t, "e-1", d.Entries[0].ID)
	assert.Equal(t, m.CreatedAt, d.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_ApplyMutation_Duplicate(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshot)).WillReturnRows(sqlmock.NewRows([]string{"document"}))
	mock.ExpectExec(regexp.QuoteMeta(insertPendingChange)).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
	mock.ExpectRollback()

	_, _, err := repo.ApplyMutation(context.Background(), entryMutation(t, "m-1", "e-1"))
	assert.ErrorIs(t, err, ErrDuplicateMutation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_ApplyMutation_UnknownKindRollsBack(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(loadSnapshot)).WillReturnRows(sqlmock.NewRows([]string{"document"}))
	mock.ExpectRollback()

	_, _, err := repo.ApplyMutation(context.Background(), models.Mutation{ID: "m-1", Kind: "bogus"})
	assert.ErrorIs(t, err, models.ErrUnknownMutationKind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_ApplyMutation_BusyIsTransient(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, _, err := repo.ApplyMutation(context.Background(), entryMutation(t, "m-1", "e-1"))
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestLocalRepository_AckPending(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM pending_changes WHERE mutation_id IN (?,?)`)).
		WithArgs("m-1", "m-2").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta(countPendingChanges)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	remaining, err := repo.AckPending(context.Background(), []string{"m-1", "m-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_GetSetting_NotFound(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getSetting)).
		WithArgs(SettingAPIKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetSetting(context.Background(), SettingAPIKey)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestLocalRepository_SetSetting_Error(t *testing.T) {
	repo, mock := newLocalRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertSetting)).
		WithArgs(SettingBinID, "bin-1").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SetSetting(context.Background(), SettingBinID, "bin-1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

// ── SQLite ───────────────────────────────────────────────────────────────────

// newSQLiteStorages открывает настоящий файл SQLite во временной директории
func newSQLiteStorages(t *testing.T) (*ClientStorages, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "fitsync.db")
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	return s, path
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, path := newSQLiteStorages(t)

	_, pending, err := s.Local.ApplyMutation(ctx, entryMutation(t, "m-1", "e-1"))
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	_, pending, err = s.Local.ApplyMutation(ctx, entryMutation(t, "m-2", "e-2"))
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	_, _, err = s.Local.ApplyMutation(ctx, entryMutation(t, "m-2", "e-3"))
	assert.ErrorIs(t, err, ErrDuplicateMutation)

	d, ids, err := s.Local.LoadSyncBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"m-1", "m-2"}, ids)
	assert.Len(t, d.Entries, 2)

	// a change recorded after the batch was read stays pending
	_, _, err = s.Local.ApplyMutation(ctx, entryMutation(t, "m-3", "e-3"))
	require.NoError(t, err)

	remaining, err := s.Local.AckPending(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	syncedAt := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.Local.SetLastSyncedAt(ctx, syncedAt))
	require.NoError(t, s.Local.SetSetting(ctx, SettingBinID, "bin-1"))
	require.NoError(t, s.Close())

	// reopen: everything survives a restart
	reopened, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	n, err := reopened.Local.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	last, err := reopened.Local.LastSyncedAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, syncedAt.Equal(*last))

	binID, err := reopened.Local.GetSetting(ctx, SettingBinID)
	require.NoError(t, err)
	assert.Equal(t, "bin-1", binID)

	snapshot, err := reopened.Local.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Entries, 3)
}

func TestSQLite_ReplaceSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStorages(t)
	t.Cleanup(func() { s.Close() })

	_, _, err := s.Local.ApplyMutation(ctx, entryMutation(t, "m-1", "e-1"))
	require.NoError(t, err)

	remote := models.NewDataset()
	remote.Profile = &models.Profile{Name: "Ann"}

	// несинхронизированные изменения не теряются без явного dropPending
	err = s.Local.ReplaceSnapshot(ctx, remote, false)
	assert.ErrorIs(t, err, ErrPendingChanges)
	n, err := s.Local.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	kept, err := s.Local.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, kept.Entries, 1)
	assert.Nil(t, kept.Profile)

	require.NoError(t, s.Local.ReplaceSnapshot(ctx, remote, true))
	n, err = s.Local.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	d, err := s.Local.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, d.Profile)
	assert.Equal(t, "Ann", d.Profile.Name)
	assert.Empty(t, d.Entries)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"entries":[]`)
}

func TestSQLite_Settings(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStorages(t)
	t.Cleanup(func() { s.Close() })

	last, err := s.Local.LastSyncedAt(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, s.Local.SetSetting(ctx, SettingAPIKey, "k1"))
	require.NoError(t, s.Local.SetSetting(ctx, SettingAPIKey, "k2"))
	v, err := s.Local.GetSetting(ctx, SettingAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "k2", v)

	require.NoError(t, s.Local.DeleteSetting(ctx, SettingAPIKey))
	_, err = s.Local.GetSetting(ctx, SettingAPIKey)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
