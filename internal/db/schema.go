package db

import (
	"context"
	"fmt"
)

// schema is the full DDL for the marketplace. Statements are idempotent
// so Migrate can be re-run safely.
const schema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    phone         TEXT NOT NULL DEFAULT '',
    role          TEXT NOT NULL DEFAULT 'labor'
                  CHECK (role IN ('labor', 'supervisor')),
    password_hash TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobs (
    id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    supervisor_id     UUID NOT NULL REFERENCES users(id),
    title             TEXT NOT NULL,
    company           TEXT NOT NULL DEFAULT '',
    location_name     TEXT NOT NULL,
    description       TEXT NOT NULL DEFAULT '',
    wage_type         TEXT NOT NULL CHECK (wage_type IN ('hourly', 'daily')),
    wage_amount       BIGINT NOT NULL CHECK (wage_amount > 0),
    required_date     DATE NOT NULL,
    duration_hours    INT NOT NULL CHECK (duration_hours BETWEEN 1 AND 12),
    expires_at        TIMESTAMPTZ NOT NULL,
    laborers_required INT NOT NULL CHECK (laborers_required > 0),
    laborers_applied  INT NOT NULL DEFAULT 0
                      CHECK (laborers_applied >= 0 AND laborers_applied <= laborers_required),
    status            TEXT NOT NULL DEFAULT 'open'
                      CHECK (status IN ('open', 'filled', 'expired', 'delisted')),
    is_listed         BOOLEAN NOT NULL DEFAULT TRUE,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_jobs_feed
    ON jobs (status, is_listed, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_jobs_supervisor
    ON jobs (supervisor_id, created_at DESC);

CREATE TABLE IF NOT EXISTS job_applications (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    job_id        UUID NOT NULL REFERENCES jobs(id),
    labor_id      UUID NOT NULL REFERENCES users(id),
    supervisor_id UUID NOT NULL REFERENCES users(id),
    status        TEXT NOT NULL DEFAULT 'confirmed'
                  CHECK (status IN ('pending', 'confirmed', 'rejected')),
    applied_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (job_id, labor_id)
);

CREATE INDEX IF NOT EXISTS idx_applications_labor
    ON job_applications (labor_id, applied_at DESC);

CREATE TABLE IF NOT EXISTS bookings (
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    job_id         UUID NOT NULL,
    labor_id       UUID NOT NULL REFERENCES users(id),
    supervisor_id  UUID NOT NULL REFERENCES users(id),
    job_title      TEXT NOT NULL,
    location_name  TEXT NOT NULL,
    job_date       DATE NOT NULL,
    duration_hours INT NOT NULL,
    wage_amount    BIGINT NOT NULL,
    status         TEXT NOT NULL DEFAULT 'confirmed'
                   CHECK (status IN ('confirmed', 'cancelled')),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bookings_labor
    ON bookings (labor_id, status, job_date DESC);
CREATE INDEX IF NOT EXISTS idx_bookings_supervisor
    ON bookings (supervisor_id, status, created_at DESC);

CREATE TABLE IF NOT EXISTS rate_policy (
    id                INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    min_wage_per_hour BIGINT NOT NULL CHECK (min_wage_per_hour > 0),
    last_updated      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema to the connected database
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
