package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"voicedesk.app/api-server/internal/model"
)

type userStore struct {
	pool *pgxpool.Pool
}

func newUserStore(pool *pgxpool.Pool) UserStore {
	return &userStore{pool: pool}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, name, email, avatar_url, workos_id, created_at
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.WorkOSID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &u, nil
}

// UpsertByWorkOSID inserts the user or refreshes profile fields on conflict,
// keeping the existing snowflake ID. The caller's user.ID is replaced with the
// stored one.
func (s *userStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, name, email, avatar_url, workos_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (workos_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			avatar_url = EXCLUDED.avatar_url
		RETURNING id, created_at
	`

	err := s.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.AvatarURL, user.WorkOSID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}
