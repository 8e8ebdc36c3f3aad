// Package postgres provides a PostgreSQL-backed transaction store.
package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/pulkeeper/pulkeeper/internal/domain"
	"github.com/pulkeeper/pulkeeper/internal/storage"
)

//go:embed 001_create_transactions.sql
var migrationSQL string

// Config holds the PostgreSQL store configuration.
type Config struct {
	// DSN is a pgx-compatible connection string.
	DSN string

	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize int
}

// Store writes resolved transactions to a PostgreSQL database.
type Store struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// New creates a PostgreSQL store, verifies connectivity and applies the
// schema migration.
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	if cfg.MaxPoolSize == 0 {
		cfg.MaxPoolSize = 10
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxPoolSize)
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{pool: pool, log: log}

	if err := s.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info().Msg("Connected to PostgreSQL")
	return s, nil
}

func (s *Store) runMigrations(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, migrationSQL); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}
	return nil
}

// InsertTransaction implements the storage.Store interface.
func (s *Store) InsertTransaction(ctx context.Context, userID int64, tx domain.ParsedTransaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}

	txDate := tx.Date
	if txDate == "" {
		txDate = time.Now().Format("2006-01-02")
	}

	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO transactions (user_id, title, category, amount, is_income, tx_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, userID, tx.Title, string(tx.Category), tx.Amount, tx.IsIncome, txDate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting transaction: %w", err)
	}

	s.log.Debug().
		Int64("user_id", userID).
		Int64("transaction_id", id).
		Int64("amount", tx.Amount).
		Str("category", string(tx.Category)).
		Msg("Transaction stored")

	return id, nil
}

// Balance implements the storage.Store interface.
func (s *Store) Balance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN is_income THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE user_id = $1
	`, userID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("querying balance: %w", err)
	}
	return balance, nil
}

// History implements the storage.Store interface.
func (s *Store) History(ctx context.Context, userID int64, limit int) ([]storage.StoredTransaction, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, title, category, amount, is_income, tx_date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var result []storage.StoredTransaction
	for rows.Next() {
		var tx storage.StoredTransaction
		var category string
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Title, &category, &tx.Amount, &tx.IsIncome, &tx.TxDate, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}
		tx.Category = domain.ParseCategory(category)
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return result, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ensure Store implements the storage interface.
var _ storage.Store = (*Store)(nil)
