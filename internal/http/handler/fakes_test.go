package handler_test

import (
	"context"
	"errors"

	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/service"
	"voicedesk.app/api-server/internal/store"
)

const (
	testSessionID = "1001"
	testUserID    = int64(7)
	testOrgID     = int64(42)
)

type stubAuthService struct {
	user *model.User
}

func (s *stubAuthService) GetAuthorizationURL(state string) (string, error) {
	return "https://auth.example.com/?state=" + state, nil
}

func (s *stubAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	return nil, nil, errors.New("not implemented")
}

func (s *stubAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if sessionID != 1001 {
		return nil, service.ErrSessionExpired
	}
	return s.user, nil
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID int64) error {
	return nil
}

type fakeMembershipStore struct {
	memberships map[[2]int64]*model.Membership
	created     []*model.Membership
	createErr   error
}

func newFakeMembershipStore() *fakeMembershipStore {
	return &fakeMembershipStore{memberships: make(map[[2]int64]*model.Membership)}
}

func (f *fakeMembershipStore) add(orgID, userID int64, role model.Role) {
	f.memberships[[2]int64{orgID, userID}] = &model.Membership{OrgID: orgID, UserID: userID, Role: role}
}

func (f *fakeMembershipStore) Get(ctx context.Context, orgID, userID int64) (*model.Membership, error) {
	m, ok := f.memberships[[2]int64{orgID, userID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return m, nil
}

func (f *fakeMembershipStore) Create(ctx context.Context, m *model.Membership) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, m)
	return nil
}

type fakeAgentStore struct {
	agents    []model.Agent
	created   []*model.Agent
	listCalls int
	createErr error
	listErr   error
}

func (f *fakeAgentStore) Create(ctx context.Context, agent *model.Agent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, agent)
	return nil
}

func (f *fakeAgentStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Agent, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Agent
	for _, a := range f.agents {
		if a.OrgID == orgID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeOrganizationStore struct {
	created   []*model.Organization
	forUser   []model.OrganizationWithRole
	createErr error
	listErr   error
}

func (f *fakeOrganizationStore) Create(ctx context.Context, org *model.Organization) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, org)
	return nil
}

func (f *fakeOrganizationStore) ListForUser(ctx context.Context, userID int64) ([]model.OrganizationWithRole, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.forUser, nil
}

type fakeUserStore struct{}

func (fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, store.ErrNotFound
}

func (fakeUserStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	return nil
}

type fakeSessionStore struct{}

func (fakeSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	return nil, store.ErrNotFound
}

func (fakeSessionStore) Create(ctx context.Context, session *model.Session) error { return nil }
func (fakeSessionStore) Delete(ctx context.Context, id int64) error               { return nil }

type fakeProvider struct {
	memberships   *fakeMembershipStore
	agents        *fakeAgentStore
	organizations *fakeOrganizationStore
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		memberships:   newFakeMembershipStore(),
		agents:        &fakeAgentStore{},
		organizations: &fakeOrganizationStore{},
	}
}

func (p *fakeProvider) Users() store.UserStore                 { return fakeUserStore{} }
func (p *fakeProvider) Sessions() store.SessionStore           { return fakeSessionStore{} }
func (p *fakeProvider) Organizations() store.OrganizationStore { return p.organizations }
func (p *fakeProvider) Memberships() store.MembershipStore     { return p.memberships }
func (p *fakeProvider) Agents() store.AgentStore               { return p.agents }

type countingVoiceLister struct {
	calls  int
	voices []model.Voice
	err    error
}

func (c *countingVoiceLister) ListVoices(ctx context.Context) ([]model.Voice, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.voices, nil
}
