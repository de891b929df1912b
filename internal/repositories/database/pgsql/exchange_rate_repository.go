package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_backend/internal/models"
	"github.com/SscSPs/storefront_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository stores rate table snapshots in PostgreSQL.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for rate snapshots.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

// SaveSnapshot inserts a snapshot header and all of its rates in one transaction.
func (r *PgxExchangeRateRepository) SaveSnapshot(ctx context.Context, table domain.RateTable) error {
	if table.SnapshotID == "" {
		table.SnapshotID = uuid.NewString()
	}
	header, rates := mapping.ToModelExchangeRateSnapshot(table)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO exchange_rate_snapshots (snapshot_id, base_currency_code, source, fetched_at, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		header.SnapshotID, header.BaseCurrencyCode, header.Source, header.FetchedAt, header.ExpiresAt, time.Now(),
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to save exchange rate snapshot", err)
	}

	batch := &pgx.Batch{}
	for _, rate := range rates {
		batch.Queue(`
			INSERT INTO exchange_rate_snapshot_rates (snapshot_id, currency_code, rate)
			VALUES ($1, $2, $3)`,
			rate.SnapshotID, rate.CurrencyCode, rate.Rate,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to save exchange rate snapshot rates", err)
	}

	return r.Commit(ctx, tx)
}

// FindLatestSnapshot retrieves the most recently fetched snapshot for a base currency.
func (r *PgxExchangeRateRepository) FindLatestSnapshot(ctx context.Context, baseCurrencyCode string) (*domain.RateTable, error) {
	query := `
		SELECT snapshot_id, base_currency_code, source, fetched_at, expires_at, created_at
		FROM exchange_rate_snapshots
		WHERE base_currency_code = $1
		ORDER BY fetched_at DESC
		LIMIT 1;
	`
	var header models.ExchangeRateSnapshot
	err := r.Pool.QueryRow(ctx, query, baseCurrencyCode).Scan(
		&header.SnapshotID,
		&header.BaseCurrencyCode,
		&header.Source,
		&header.FetchedAt,
		&header.ExpiresAt,
		&header.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rate snapshot for base " + baseCurrencyCode)
		}
		return nil, fmt.Errorf("failed to find latest exchange rate snapshot: %w", err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT snapshot_id, currency_code, rate
		FROM exchange_rate_snapshot_rates
		WHERE snapshot_id = $1
		ORDER BY currency_code;`,
		header.SnapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rate snapshot rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRateSnapshotRate, error) {
		var rate models.ExchangeRateSnapshotRate
		err := row.Scan(&rate.SnapshotID, &rate.CurrencyCode, &rate.Rate)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rate snapshot rates: %w", err)
	}

	table := mapping.ToDomainRateTable(header, rates)
	return &table, nil
}
