package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// RunMigrations executes the initial schema migration. The users, food_logs,
// payment_transactions and system_activities tables are shared with the
// WhatsApp bot backend; admin_users belongs to the panel alone. The
// whatsapp_id column holds the AES-GCM sealed identifier.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS admin_users (
			id         TEXT PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			password   TEXT NOT NULL,
			role       TEXT NOT NULL DEFAULT 'admin',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS users (
			id                  TEXT PRIMARY KEY,
			first_name          TEXT NOT NULL DEFAULT '',
			last_name           TEXT NOT NULL DEFAULT '',
			whatsapp_id         TEXT NOT NULL UNIQUE,
			quiz_completed      BOOLEAN NOT NULL DEFAULT FALSE,
			weight_kg           DOUBLE PRECISION,
			height_cm           DOUBLE PRECISION,
			age                 INTEGER,
			gender              TEXT,
			activity_level      TEXT,
			goal                TEXT,
			bmr                 DOUBLE PRECISION,
			daily_calorie_goal  INTEGER,
			subscription_status TEXT NOT NULL DEFAULT 'free',
			subscription_tier   TEXT NOT NULL DEFAULT '',
			trial_started_at    TIMESTAMPTZ,
			trial_ends_at       TIMESTAMPTZ,
			last_payment_at     TIMESTAMPTZ,
			payment_sub_id      TEXT NOT NULL DEFAULT '',
			cancellation_reason TEXT NOT NULL DEFAULT '',
			is_active           BOOLEAN NOT NULL DEFAULT TRUE,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_users_whatsapp_id ON users(whatsapp_id);
		CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at);

		CREATE TABLE IF NOT EXISTS food_logs (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			food_name     TEXT NOT NULL,
			raw_input     TEXT NOT NULL DEFAULT '',
			calories      DOUBLE PRECISION NOT NULL DEFAULT 0,
			protein_g     DOUBLE PRECISION NOT NULL DEFAULT 0,
			method        TEXT NOT NULL,
			quality_score INTEGER NOT NULL DEFAULT 0,
			confidence    DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_food_logs_user_id ON food_logs(user_id);
		CREATE INDEX IF NOT EXISTS idx_food_logs_created_at ON food_logs(created_at);

		CREATE TABLE IF NOT EXISTS payment_transactions (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			amount_cents BIGINT NOT NULL,
			status       TEXT NOT NULL,
			type         TEXT NOT NULL DEFAULT '',
			payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_payments_user_id ON payment_transactions(user_id);

		CREATE TABLE IF NOT EXISTS system_activities (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			activity_type TEXT NOT NULL,
			activity_data TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_activities_created_at ON system_activities(created_at);
	`
	_, err := pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
