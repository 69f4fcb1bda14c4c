package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/models"
)

// querier is the subset of *sql.DB and *sql.Tx the repository needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// localRepository is the SQLite-backed implementation of [LocalStorage].
type localRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalRepository(db *DB, logger *logger.Logger) LocalStorage {
	logger.Debug().Msg("creating local repository")
	return &localRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRepository) LoadSnapshot(ctx context.Context) (models.Dataset, error) {
	d, err := l.loadSnapshot(ctx, l.DB)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localRepository.LoadSnapshot").Msg("failed to load dataset snapshot")
		return models.Dataset{}, err
	}
	return d, nil
}

func (l *localRepository) ApplyMutation(ctx context.Context, m models.Mutation) (models.Dataset, int, error) {
	log := logger.FromContext(ctx)

	var (
		next    models.Dataset
		pending int
	)
	err := l.withTx(ctx, func(tx *sql.Tx) error {
		current, err := l.loadSnapshot(ctx, tx)
		if err != nil {
			return err
		}

		next, err = current.Apply(m)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, insertPendingChange, m.ID, string(m.Kind), nullableJSON(m.Payload), m.CreatedAt.UTC()); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrDuplicateMutation, m.ID)
			}
			return l.wrap(ErrExecutingStatement, err)
		}

		if err = l.saveSnapshot(ctx, tx, next); err != nil {
			return err
		}

		pending, err = l.countPending(ctx, tx)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "localRepository.ApplyMutation").
			Str("mutation_id", m.ID).
			Str("kind", string(m.Kind)).
			Msg("failed to apply mutation")
		return models.Dataset{}, 0, err
	}

	return next, pending, nil
}

func (l *localRepository) LoadSyncBatch(ctx context.Context) (models.Dataset, []string, error) {
	log := logger.FromContext(ctx)

	var (
		d   models.Dataset
		ids []string
	)
	err := l.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if d, err = l.loadSnapshot(ctx, tx); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, listPendingChangeIDs)
		if err != nil {
			return l.wrap(ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if err = rows.Scan(&id); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			ids = append(ids, id)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localRepository.LoadSyncBatch").Msg("failed to load sync batch")
		return models.Dataset{}, nil, err
	}

	return d, ids, nil
}

func (l *localRepository) PendingCount(ctx context.Context) (int, error) {
	n, err := l.countPending(ctx, l.DB)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localRepository.PendingCount").Msg("failed to count pending changes")
		return 0, err
	}
	return n, nil
}

func (l *localRepository) AckPending(ctx context.Context, ids []string) (int, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return l.PendingCount(ctx)
	}

	query, args, err := sq.Delete("pending_changes").
		Where(sq.Eq{"mutation_id": ids}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "localRepository.AckPending").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var remaining int
	err = l.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return l.wrap(ErrExecutingStatement, err)
		}
		remaining, err = l.countPending(ctx, tx)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "localRepository.AckPending").Int("acked", len(ids)).Msg("failed to acknowledge pending changes")
		return 0, err
	}

	return remaining, nil
}

func (l *localRepository) ReplaceSnapshot(ctx context.Context, d models.Dataset, dropPending bool) error {
	err := l.withTx(ctx, func(tx *sql.Tx) error {
		if dropPending {
			if _, err := tx.ExecContext(ctx, deleteAllPendingChanges); err != nil {
				return l.wrap(ErrExecutingStatement, err)
			}
			return l.saveSnapshot(ctx, tx, d)
		}

		pending, err := l.countPending(ctx, tx)
		if err != nil {
			return err
		}
		if pending > 0 {
			return fmt.Errorf("%w: %d pending", ErrPendingChanges, pending)
		}
		return l.saveSnapshot(ctx, tx, d)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRepository.ReplaceSnapshot").
			Bool("drop_pending", dropPending).
			Msg("failed to replace dataset snapshot")
		return err
	}
	return nil
}

func (l *localRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := l.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localRepository.GetSetting").Str("key", key).Msg("failed to read setting")
		return "", l.wrap(ErrExecutingQuery, err)
	}
	return value, nil
}

func (l *localRepository) SetSetting(ctx context.Context, key, value string) error {
	if _, err := l.DB.ExecContext(ctx, upsertSetting, key, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localRepository.SetSetting").Str("key", key).Msg("failed to write setting")
		return l.wrap(ErrExecutingStatement, err)
	}
	return nil
}

func (l *localRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := l.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localRepository.DeleteSetting").Str("key", key).Msg("failed to delete setting")
		return l.wrap(ErrExecutingStatement, err)
	}
	return nil
}

func (l *localRepository) LastSyncedAt(ctx context.Context) (*time.Time, error) {
	raw, err := l.GetSetting(ctx, SettingLastSyncedAt)
	if errors.Is(err, ErrSettingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", SettingLastSyncedAt, err)
	}
	return &at, nil
}

func (l *localRepository) SetLastSyncedAt(ctx context.Context, at time.Time) error {
	return l.SetSetting(ctx, SettingLastSyncedAt, at.UTC().Format(time.RFC3339Nano))
}

func (l *localRepository) loadSnapshot(ctx context.Context, q querier) (models.Dataset, error) {
	var document string
	err := q.QueryRowContext(ctx, loadSnapshot).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewDataset(), nil
	}
	if err != nil {
		return models.Dataset{}, l.wrap(ErrExecutingQuery, err)
	}

	d := models.NewDataset()
	if err = json.Unmarshal([]byte(document), &d); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if d.Entries == nil {
		d.Entries = []models.Entry{}
	}
	return d, nil
}

func (l *localRepository) saveSnapshot(ctx context.Context, q querier, d models.Dataset) error {
	document, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode dataset snapshot: %w", err)
	}

	updatedAt := d.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	if _, err = q.ExecContext(ctx, upsertSnapshot, string(document), updatedAt.UTC()); err != nil {
		return l.wrap(ErrExecutingStatement, err)
	}
	return nil
}

func (l *localRepository) countPending(ctx context.Context, q querier) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, countPendingChanges).Scan(&n); err != nil {
		return 0, l.wrap(ErrExecutingQuery, err)
	}
	return n, nil
}

// wrap tags err with kind, and with ErrStorageUnavailable when the backend
// reports it as transient.
func (l *localRepository) wrap(kind, err error) error {
	if l.Retryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
