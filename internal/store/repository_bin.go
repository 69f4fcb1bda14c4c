package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/models"
)

var binColumns = []string{"id", "owner", "name", "private", "record", "created_at", "updated_at"}

// binRepository is the PostgreSQL-backed implementation of [BinRepository].
type binRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewBinRepository constructs a [BinRepository] over the "bins" table.
func NewBinRepository(db *DB, logger *logger.Logger) BinRepository {
	logger.Debug().Msg("creating bin repository")
	return &binRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger,
	}
}

// Create inserts bin and returns it with the database timestamps.
//
// Error handling:
//   - unique_violation (23505) → [ErrBinAlreadyExists].
//   - transient errors → [ErrStorageUnavailable].
func (r *binRepository) Create(ctx context.Context, bin models.Bin) (models.Bin, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("bins").
		Columns("id", "owner", "name", "private", "record").
		Values(bin.ID, bin.Owner, bin.Name, bin.Private, string(bin.Record)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Create").Msg("error building query")
		return models.Bin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&bin.CreatedAt, &bin.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Create").Str("bin_id", bin.ID).Msg("error inserting bin")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Bin{}, ErrBinAlreadyExists
		}
		return models.Bin{}, r.wrap(ErrExecutingStatement, err)
	}

	return bin, nil
}

// Get returns the bin id if it belongs to owner.
func (r *binRepository) Get(ctx context.Context, id, owner string) (models.Bin, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(binColumns...).
		From("bins").
		Where(sq.Eq{"id": id, "owner": owner}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Get").Msg("error building query")
		return models.Bin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bin, err := scanBin(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bin{}, ErrBinNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Get").Str("bin_id", id).Msg("error selecting bin")
		return models.Bin{}, r.wrap(ErrExecutingQuery, err)
	}

	return bin, nil
}

// Update replaces the record of bin id and bumps updated_at.
func (r *binRepository) Update(ctx context.Context, id, owner string, record json.RawMessage) (models.Bin, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update("bins").
		Set("record", string(record)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "owner": owner}).
		Suffix("RETURNING " + strings.Join(binColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Update").Msg("error building query")
		return models.Bin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bin, err := scanBin(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bin{}, ErrBinNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Update").Str("bin_id", id).Msg("error updating bin")
		return models.Bin{}, r.wrap(ErrExecutingStatement, err)
	}

	return bin, nil
}

// Delete removes bin id. Zero affected rows means [ErrBinNotFound].
func (r *binRepository) Delete(ctx context.Context, id, owner string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("bins").
		Where(sq.Eq{"id": id, "owner": owner}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*binRepository.Delete").Str("bin_id", id).Msg("error deleting bin")
		return r.wrap(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrap(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBinNotFound
	}

	return nil
}

func (r *binRepository) wrap(kind, err error) error {
	if r.db.Retryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func scanBin(row *sql.Row) (models.Bin, error) {
	var (
		bin    models.Bin
		record []byte
	)
	err := row.Scan(&bin.ID, &bin.Owner, &bin.Name, &bin.Private, &record, &bin.CreatedAt, &bin.UpdatedAt)
	if err != nil {
		return models.Bin{}, err
	}
	bin.Record = json.RawMessage(record)
	return bin, nil
}
