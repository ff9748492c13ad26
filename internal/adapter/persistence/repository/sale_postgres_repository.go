package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rutvans_api/internal/domain/entities"
	"rutvans_api/internal/usecase/interfaces"
)

const saleColumns = `id, folio, user_id, payment_id, schedule_id, rate_id, route_label, status, amount, created_at, updated_at`

const createSalesTable = `
	CREATE TABLE IF NOT EXISTS ventas (
		id          TEXT PRIMARY KEY,
		folio       TEXT NOT NULL DEFAULT '',
		user_id     BIGINT NOT NULL DEFAULT 0,
		payment_id  BIGINT NOT NULL DEFAULT 0,
		schedule_id BIGINT NOT NULL DEFAULT 0,
		rate_id     BIGINT NOT NULL DEFAULT 0,
		route_label TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT '',
		amount      DOUBLE PRECISION NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS ventas_created_at_idx ON ventas (created_at, id);
`

// SalePostgresRepository persists sales in the ventas table through the pgx
// database/sql driver.
type SalePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ISaleRepository = (*SalePostgresRepository)(nil)

func NewSalePostgresRepository(db *sql.DB) *SalePostgresRepository {
	return &SalePostgresRepository{db: db}
}

// EnsureSchema creates the ventas table and its index when missing.
func (r *SalePostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createSalesTable)
	return err
}

func (r *SalePostgresRepository) FindAll(ctx context.Context) ([]entities.Sale, error) {
	return r.query(ctx, `SELECT `+saleColumns+` FROM ventas ORDER BY created_at, id`)
}

func (r *SalePostgresRepository) FindInRange(ctx context.Context, start, end time.Time) ([]entities.Sale, error) {
	return r.query(ctx, `
		SELECT `+saleColumns+`
		FROM ventas
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at, id
	`, start.UTC(), end.UTC())
}

func (r *SalePostgresRepository) List(ctx context.Context, limit int) ([]entities.Sale, error) {
	if limit <= 0 {
		return r.FindAll(ctx)
	}
	return r.query(ctx, `SELECT `+saleColumns+` FROM ventas ORDER BY created_at, id LIMIT $1`, limit)
}

func (r *SalePostgresRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	s, err := scanSale(r.db.QueryRowContext(ctx, `SELECT `+saleColumns+` FROM ventas WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Sale{}, nil
	}
	return s, err
}

func (r *SalePostgresRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ventas (`+saleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, saleArgs(s)...)
	if err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

// Update replaces the stored sale. A missing id yields a zero Sale.
func (r *SalePostgresRepository) Update(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE ventas
		SET folio = $2, user_id = $3, payment_id = $4, schedule_id = $5, rate_id = $6,
		    route_label = $7, status = $8, amount = $9, created_at = $10, updated_at = $11
		WHERE id = $1
	`, saleArgs(s)...)
	if err != nil {
		return entities.Sale{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Sale{}, err
	}
	if n == 0 {
		return entities.Sale{}, nil
	}
	return s, nil
}

func (r *SalePostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SalePostgresRepository) query(ctx context.Context, q string, args ...any) ([]entities.Sale, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]entities.Sale, 0, 128)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sales, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (entities.Sale, error) {
	var (
		s      entities.Sale
		amount sql.NullFloat64
	)
	err := row.Scan(&s.ID, &s.Folio, &s.UserID, &s.PaymentID, &s.ScheduleID, &s.RateID,
		&s.RouteLabel, &s.Status, &amount, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return entities.Sale{}, err
	}
	if amount.Valid {
		v := amount.Float64
		s.Amount = &v
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

func saleArgs(s entities.Sale) []any {
	var amount sql.NullFloat64
	if s.Amount != nil {
		amount = sql.NullFloat64{Float64: *s.Amount, Valid: true}
	}
	return []any{s.ID, s.Folio, s.UserID, s.PaymentID, s.ScheduleID, s.RateID,
		s.RouteLabel, s.Status, amount, s.CreatedAt.UTC(), s.UpdatedAt.UTC()}
}
