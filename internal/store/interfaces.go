package store

import (
	"context"
	"errors"

	"voicedesk.app/api-server/internal/model"
)

var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
}

type OrganizationStore interface {
	Create(ctx context.Context, org *model.Organization) error
	ListForUser(ctx context.Context, userID int64) ([]model.OrganizationWithRole, error)
}

type MembershipStore interface {
	Get(ctx context.Context, orgID, userID int64) (*model.Membership, error)
	Create(ctx context.Context, m *model.Membership) error
}

type AgentStore interface {
	Create(ctx context.Context, agent *model.Agent) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Agent, error)
}

// Provider bundles the stores backed by a single credential scope. The server
// holds two providers: one on the user-scoped pool, subject to the database's
// row-level policies, and one on the elevated service pool that bypasses them.
// Callers choose a scope explicitly per operation.
type Provider interface {
	Users() UserStore
	Sessions() SessionStore
	Organizations() OrganizationStore
	Memberships() MembershipStore
	Agents() AgentStore
}
