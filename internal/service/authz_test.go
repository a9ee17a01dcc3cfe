package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/service"
	"voicedesk.app/api-server/internal/store"
)

type fakeMembershipStore struct {
	memberships map[[2]int64]*model.Membership
	getErr      error
	created     []*model.Membership
	createErr   error
}

func newFakeMembershipStore() *fakeMembershipStore {
	return &fakeMembershipStore{memberships: make(map[[2]int64]*model.Membership)}
}

func (f *fakeMembershipStore) add(orgID, userID int64, role model.Role) {
	f.memberships[[2]int64{orgID, userID}] = &model.Membership{
		OrgID:  orgID,
		UserID: userID,
		Role:   role,
	}
}

func (f *fakeMembershipStore) Get(ctx context.Context, orgID, userID int64) (*model.Membership, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
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
	f.add(m.OrgID, m.UserID, m.Role)
	return nil
}

var _ = Describe("Authorizer", func() {
	var (
		memberships *fakeMembershipStore
		authorizer  service.Authorizer
		ctx         context.Context
	)

	BeforeEach(func() {
		memberships = newFakeMembershipStore()
		authorizer = service.NewAuthorizer(memberships)
		ctx = context.Background()
	})

	It("denies a principal with no membership, regardless of the required role set", func() {
		_, err := authorizer.Authorize(ctx, 7, 42)
		Expect(err).To(MatchError(service.ErrAccessDenied))

		_, err = authorizer.Authorize(ctx, 7, 42, model.RoleViewer)
		Expect(err).To(MatchError(service.ErrAccessDenied))

		_, err = authorizer.Authorize(ctx, 7, 42, model.AllRoles...)
		Expect(err).To(MatchError(service.ErrAccessDenied))
	})

	It("admits any member when no role is required", func() {
		memberships.add(42, 7, model.RoleViewer)

		m, err := authorizer.Authorize(ctx, 7, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Role).To(Equal(model.RoleViewer))
	})

	It("rejects members whose role is outside the required set", func() {
		for _, role := range []model.Role{model.RoleAnalyst, model.RoleViewer} {
			memberships.add(42, 7, role)

			_, err := authorizer.Authorize(ctx, 7, 42, model.AgentCreatorRoles...)
			Expect(err).To(MatchError(service.ErrInsufficientRole), "role %s", role)
		}
	})

	It("admits members holding a required role", func() {
		for _, role := range model.AgentCreatorRoles {
			memberships.add(42, 7, role)

			m, err := authorizer.Authorize(ctx, 7, 42, model.AgentCreatorRoles...)
			Expect(err).NotTo(HaveOccurred(), "role %s", role)
			Expect(m.Role).To(Equal(role))
		}
	})

	It("propagates store failures without converting them to denials", func() {
		memberships.getErr = errors.New("connection refused")

		_, err := authorizer.Authorize(ctx, 7, 42)
		Expect(err).NotTo(MatchError(service.ErrAccessDenied))
		Expect(err).To(MatchError(ContainSubstring("connection refused")))
	})
})
