package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// GetRatePolicy returns the current minimum-wage policy. When the table
// has never been seeded it falls back to DefaultMinWagePerHour so the
// wage check still has a floor to enforce.
func (db *DB) GetRatePolicy(ctx context.Context) (*RatePolicy, error) {
	var policy RatePolicy
	err := db.pool.QueryRow(ctx,
		`SELECT min_wage_per_hour, last_updated FROM rate_policy WHERE id = 1`,
	).Scan(&policy.MinWagePerHour, &policy.LastUpdated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &RatePolicy{
				MinWagePerHour: DefaultMinWagePerHour,
				LastUpdated:    time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("failed to get rate policy: %w", err)
	}
	return &policy, nil
}

// UpdateRatePolicy sets the minimum wage. Existing postings are
// grandfathered: the floor is only enforced at creation time.
func (db *DB) UpdateRatePolicy(ctx context.Context, minWagePerHour int64) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO rate_policy (id, min_wage_per_hour, last_updated)
		 VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET min_wage_per_hour = $1, last_updated = NOW()`,
		minWagePerHour)
	if err != nil {
		return fmt.Errorf("failed to update rate policy: %w", err)
	}
	return nil
}
