package profilerepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/shiji-energy/internal/domain/profile"
)

// PostgresRepository persists profiles in Postgres. The whole aggregate is
// stored as one JSONB document keyed by user id; profiles are small and
// always read and written whole.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get fetches a profile by user id.
func (r *PostgresRepository) Get(ctx context.Context, userID int64) (profile.Profile, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT data, updated_at
		FROM profiles
		WHERE user_id = $1
		LIMIT 1
	`, userID)
	if err != nil {
		return profile.Profile{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return profile.Profile{}, false, rows.Err()
	}

	var data []byte
	var updated time.Time
	if err := rows.Scan(&data, &updated); err != nil {
		return profile.Profile{}, false, err
	}

	var p profile.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return profile.Profile{}, false, err
	}
	p.UserID = userID
	p.UpdatedAt = updated.UTC()
	return p, true, rows.Err()
}

// Save upserts the profile document.
func (r *PostgresRepository) Save(ctx context.Context, p profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO profiles (user_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, p.UserID, data, p.UpdatedAt)
	return err
}

var _ profile.Repository = (*PostgresRepository)(nil)
