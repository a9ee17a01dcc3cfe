package store

import "github.com/jackc/pgx/v5/pgxpool"

type provider struct {
	users         UserStore
	sessions      SessionStore
	organizations OrganizationStore
	memberships   MembershipStore
	agents        AgentStore
}

// New builds a store provider over a connection pool. The credential scope of
// the provider is the credential scope of the pool.
func New(pool *pgxpool.Pool) Provider {
	return &provider{
		users:         newUserStore(pool),
		sessions:      newSessionStore(pool),
		organizations: newOrganizationStore(pool),
		memberships:   newMembershipStore(pool),
		agents:        newAgentStore(pool),
	}
}

func (p *provider) Users() UserStore                 { return p.users }
func (p *provider) Sessions() SessionStore           { return p.sessions }
func (p *provider) Organizations() OrganizationStore { return p.organizations }
func (p *provider) Memberships() MembershipStore     { return p.memberships }
func (p *provider) Agents() AgentStore               { return p.agents }
