package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"voicedesk.app/api-server/internal/model"
)

type membershipStore struct {
	pool *pgxpool.Pool
}

func newMembershipStore(pool *pgxpool.Pool) MembershipStore {
	return &membershipStore{pool: pool}
}

func (s *membershipStore) Get(ctx context.Context, orgID, userID int64) (*model.Membership, error) {
	query := `
		SELECT org_id, user_id, role, created_at
		FROM organization_members
		WHERE org_id = $1 AND user_id = $2
	`

	var m model.Membership
	err := s.pool.QueryRow(ctx, query, orgID, userID).Scan(&m.OrgID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	return &m, nil
}

func (s *membershipStore) Create(ctx context.Context, m *model.Membership) error {
	query := `
		INSERT INTO organization_members (org_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	if err := s.pool.QueryRow(ctx, query, m.OrgID, m.UserID, m.Role).Scan(&m.CreatedAt); err != nil {
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}
