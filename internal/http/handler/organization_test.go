package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"voicedesk.app/api-server/internal/http/handler"
	"voicedesk.app/api-server/internal/http/middleware"
	"voicedesk.app/api-server/internal/http/router"
	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/service"
)

var _ = Describe("OrganizationHandler", func() {
	var (
		engine        *gin.Engine
		userStores    *fakeProvider
		serviceStores *fakeProvider
	)

	newRequest := func(method, target string, body any, authenticated bool) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, target, &buf)
		req.Header.Set("Content-Type", "application/json")
		if authenticated {
			req.Header.Set(middleware.SessionIDHeader, testSessionID)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)

		userStores = newFakeProvider()
		serviceStores = newFakeProvider()

		auth := &stubAuthService{user: &model.User{ID: testUserID, Email: "p@example.com"}}
		orgService := service.NewOrganizationService(userStores, serviceStores)

		engine = router.New(router.Handlers{
			Organizations: handler.NewOrganizationHandler(orgService),
			Auth:          handler.NewAuthHandler(auth, "http://dash", false),
		}, auth, middleware.NewRateLimiter(middleware.RateLimitRequests, middleware.RateLimitWindow))
	})

	Describe("GET /orgs", func() {
		It("returns 401 for anonymous requests", func() {
			w := newRequest(http.MethodGet, "/orgs", nil, false)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns the caller's organizations with roles", func() {
			userStores.organizations.forUser = []model.OrganizationWithRole{
				{Organization: model.Organization{ID: 1, Name: "Acme"}, Role: model.RoleOwner},
				{Organization: model.Organization{ID: 2, Name: "Beta"}, Role: model.RoleAnalyst},
			}

			w := newRequest(http.MethodGet, "/orgs", nil, true)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Organizations []map[string]any `json:"organizations"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Organizations).To(HaveLen(2))
			Expect(resp.Organizations[0]["role"]).To(Equal("owner"))
			Expect(resp.Organizations[1]["role"]).To(Equal("analyst"))
		})

		It("returns 500 on store failure", func() {
			userStores.organizations.listErr = errors.New("boom")

			w := newRequest(http.MethodGet, "/orgs", nil, true)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("POST /orgs", func() {
		It("returns 401 for anonymous requests", func() {
			w := newRequest(http.MethodPost, "/orgs", map[string]string{"name": "Acme"}, false)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(serviceStores.organizations.created).To(BeEmpty())
		})

		It("returns 400 when name is missing, with no store call", func() {
			w := newRequest(http.MethodPost, "/orgs", map[string]string{}, true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(serviceStores.organizations.created).To(BeEmpty())
		})

		It("creates the organization and owner membership", func() {
			w := newRequest(http.MethodPost, "/orgs", map[string]string{"name": "Acme"}, true)
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(serviceStores.organizations.created).To(HaveLen(1))
			Expect(serviceStores.memberships.created).To(HaveLen(1))
			Expect(serviceStores.memberships.created[0].Role).To(Equal(model.RoleOwner))
			Expect(serviceStores.memberships.created[0].UserID).To(Equal(testUserID))

			var resp struct {
				Organization map[string]any `json:"organization"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Organization["name"]).To(Equal("Acme"))
		})

		It("returns 500 when the membership insert fails after the organization insert", func() {
			serviceStores.memberships.createErr = errors.New("insert failed")

			w := newRequest(http.MethodPost, "/orgs", map[string]string{"name": "Acme"}, true)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(serviceStores.organizations.created).To(HaveLen(1))
		})
	})
})
