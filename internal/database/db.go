package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS track_requests (
    id           UUID PRIMARY KEY,
    url          TEXT NOT NULL,
    email        TEXT NOT NULL,
    price        DOUBLE PRECISION NOT NULL,
    last_checked TIMESTAMPTZ NOT NULL DEFAULT now(),
    alert_sent   BOOLEAN NOT NULL DEFAULT false,
    created_seq  BIGSERIAL
);
CREATE INDEX IF NOT EXISTS track_requests_email_idx ON track_requests (email);
`

// Connect открывает пул подключений и проверяет его пингом
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.TargetDSN())
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("✅ connected to postgres")
	return pool, nil
}

// EnsureSchema создаёт таблицу track_requests, если её ещё нет
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
