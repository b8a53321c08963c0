package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"log/slog"
	"pricebench/core/logger"
	"pricebench/internal/records"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store keeps records in the records table. Batch appends run in one
// transaction, so a partial write can never be observed.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type row struct {
	ID          string    `db:"id"`
	CreatedAt   time.Time `db:"created_at"`
	SubmittedBy string    `db:"submitted_by"`
	Product     string    `db:"product"`
	Price       float64   `db:"price"`
	Location    string    `db:"location"`
	Remark      string    `db:"remark"`
}

func (r row) record() records.Record {
	return records.Record{
		ID:          r.ID,
		Timestamp:   r.CreatedAt,
		SubmittedBy: r.SubmittedBy,
		Product:     r.Product,
		Price:       r.Price,
		Location:    r.Location,
		Remark:      r.Remark,
	}
}

const columns = "id, created_at, submitted_by, product, price, location, remark"

func (s *Store) ListAll(ctx context.Context) ([]records.Record, error) {
	var rows []row
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+columns+" FROM records ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", records.ErrStoreUnavailable, err)
	}
	out := make([]records.Record, len(rows))
	for i, r := range rows {
		out[i] = r.record()
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (records.Record, error) {
	var r row
	err := s.db.GetContext(ctx, &r,
		"SELECT "+columns+" FROM records WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return records.Record{}, records.ErrNotFound
	}
	if err != nil {
		return records.Record{}, fmt.Errorf("%w: get: %v", records.ErrStoreUnavailable, err)
	}
	return r.record(), nil
}

func (s *Store) AppendBatch(ctx context.Context, drafts []records.Draft) ([]records.Record, error) {
	now := time.Now().UTC()
	recs := make([]records.Record, len(drafts))
	for i, d := range drafts {
		recs[i] = records.Record{
			ID:          uuid.NewString(),
			Timestamp:   now,
			SubmittedBy: d.SubmittedBy,
			Product:     d.Product,
			Price:       d.Price,
			Location:    d.Location,
			Remark:      d.Remark,
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", records.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range recs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO records (`+columns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			r.ID, r.Timestamp, r.SubmittedBy, r.Product, r.Price, r.Location, r.Remark)
		if err != nil {
			return nil, fmt.Errorf("%w: insert: %v", records.ErrStoreUnavailable, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", records.ErrStoreUnavailable, err)
	}

	logger.STORE.Info("batch appended",
		slog.String("event", "store.pg.append"),
		slog.Int("rows", len(recs)),
	)
	return recs, nil
}

func (s *Store) UpdateFields(ctx context.Context, id string, fields records.FieldMap) (records.Record, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return records.Record{}, fmt.Errorf("%w: begin: %v", records.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	var r row
	err = tx.GetContext(ctx, &r,
		"SELECT "+columns+" FROM records WHERE id = $1 FOR UPDATE", id)
	if errors.Is(err, sql.ErrNoRows) {
		return records.Record{}, records.ErrNotFound
	}
	if err != nil {
		return records.Record{}, fmt.Errorf("%w: get: %v", records.ErrStoreUnavailable, err)
	}

	rec := r.record()
	fields.Apply(&rec)
	rec.Timestamp = time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`UPDATE records
		    SET created_at = $2, product = $3, price = $4, location = $5, remark = $6
		  WHERE id = $1`,
		rec.ID, rec.Timestamp, rec.Product, rec.Price, rec.Location, rec.Remark)
	if err != nil {
		return records.Record{}, fmt.Errorf("%w: update: %v", records.ErrStoreUnavailable, err)
	}
	if err := tx.Commit(); err != nil {
		return records.Record{}, fmt.Errorf("%w: commit: %v", records.ErrStoreUnavailable, err)
	}

	logger.STORE.Info("record updated",
		slog.String("event", "store.pg.update"),
		slog.String("id", id),
		slog.Int("fields", len(fields)),
	)
	return rec, nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("%w: delete: %v", records.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete: %v", records.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return records.ErrNotFound
	}
	logger.STORE.Info("record deleted",
		slog.String("event", "store.pg.delete"),
		slog.String("id", id),
	)
	return nil
}
