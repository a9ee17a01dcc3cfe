package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/store"
)

var (
	// ErrAccessDenied covers both a missing membership and a nonexistent
	// organization; callers must not be able to tell the two apart.
	ErrAccessDenied = errors.New("access denied")

	// ErrInsufficientRole means a membership exists but its role is not in
	// the required set. Handlers present it the same way as ErrAccessDenied.
	ErrInsufficientRole = errors.New("insufficient permissions")
)

type Authorizer interface {
	Authorize(ctx context.Context, userID, orgID int64, required ...model.Role) (*model.Membership, error)
}

type authorizer struct {
	memberships store.MembershipStore
}

// NewAuthorizer builds the membership authorizer over the user-scoped
// membership store. Pure read; no side effects.
func NewAuthorizer(memberships store.MembershipStore) Authorizer {
	return &authorizer{memberships: memberships}
}

// Authorize looks up the unique (org, user) membership and checks its role
// against the required set. An empty required set admits any role.
func (a *authorizer) Authorize(ctx context.Context, userID, orgID int64, required ...model.Role) (*model.Membership, error) {
	m, err := a.memberships.Get(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("looking up membership: %w", err)
	}

	if len(required) > 0 && !slices.Contains(required, m.Role) {
		return nil, ErrInsufficientRole
	}

	return m, nil
}
