package service

import (
	"context"
	"fmt"
	"log/slog"

	"voicedesk.app/api-server/common/id"
	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/store"
)

type OrganizationService interface {
	Create(ctx context.Context, name string, creatorID int64) (*model.Organization, error)
	ListForUser(ctx context.Context, userID int64) ([]model.OrganizationWithRole, error)
}

type organizationService struct {
	// userStores is the caller-scoped provider used for reads; serviceStores
	// carries elevated credentials for inserts that application logic has
	// already authorized.
	userStores    store.Provider
	serviceStores store.Provider
}

func NewOrganizationService(userStores, serviceStores store.Provider) OrganizationService {
	return &organizationService{
		userStores:    userStores,
		serviceStores: serviceStores,
	}
}

// Create inserts the organization, then the creator's owner membership. The
// two inserts are deliberately not transactional: a failed membership insert
// leaves the organization orphaned and surfaces as an error. Known gap.
func (s *organizationService) Create(ctx context.Context, name string, creatorID int64) (*model.Organization, error) {
	org := &model.Organization{
		ID:   id.New(),
		Name: name,
	}

	if err := s.serviceStores.Organizations().Create(ctx, org); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	membership := &model.Membership{
		OrgID:  org.ID,
		UserID: creatorID,
		Role:   model.RoleOwner,
	}

	if err := s.serviceStores.Memberships().Create(ctx, membership); err != nil {
		slog.ErrorContext(ctx, "organization created but owner membership insert failed",
			"error", err,
			"org_id", org.ID,
			"user_id", creatorID,
		)
		return nil, fmt.Errorf("creating owner membership: %w", err)
	}

	slog.InfoContext(ctx, "organization created",
		"org_id", org.ID,
		"name", org.Name,
		"owner_id", creatorID,
	)

	return org, nil
}

func (s *organizationService) ListForUser(ctx context.Context, userID int64) ([]model.OrganizationWithRole, error) {
	orgs, err := s.userStores.Organizations().ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return orgs, nil
}
