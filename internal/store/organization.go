package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"voicedesk.app/api-server/internal/model"
)

type organizationStore struct {
	pool *pgxpool.Pool
}

func newOrganizationStore(pool *pgxpool.Pool) OrganizationStore {
	return &organizationStore{pool: pool}
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	query := `
		INSERT INTO organizations (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`

	if err := s.pool.QueryRow(ctx, query, org.ID, org.Name).Scan(&org.CreatedAt); err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (s *organizationStore) ListForUser(ctx context.Context, userID int64) ([]model.OrganizationWithRole, error) {
	query := `
		SELECT o.id, o.name, o.created_at, m.role
		FROM organization_members m
		JOIN organizations o ON o.id = m.org_id
		WHERE m.user_id = $1
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	var orgs []model.OrganizationWithRole
	for rows.Next() {
		var org model.OrganizationWithRole
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedAt, &org.Role); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating organizations: %w", err)
	}

	return orgs, nil
}
