package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/service"
)

type stubAuthService struct {
	validSessionID int64
	user           *model.User
	validateErr    error
}

func (s *stubAuthService) GetAuthorizationURL(state string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	return nil, nil, errors.New("not implemented")
}

func (s *stubAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	if sessionID != s.validSessionID {
		return nil, service.ErrSessionExpired
	}
	return s.user, nil
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID int64) error {
	return nil
}

var _ = Describe("RequireSession", func() {
	var (
		router *gin.Engine
		auth   *stubAuthService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		auth = &stubAuthService{
			validSessionID: 1001,
			user:           &model.User{ID: 7, Email: "p@example.com"},
		}

		router = gin.New()
		router.GET("/protected", RequireSession(auth), func(c *gin.Context) {
			user, ok := CurrentUser(c)
			Expect(ok).To(BeTrue())
			c.JSON(http.StatusOK, gin.H{"user_id": strconv.FormatInt(user.ID, 10)})
		})
	})

	It("rejects requests with no session credential", func() {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects expired or unknown sessions", func() {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(SessionIDHeader, "9999")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("resolves the principal from the session header", func() {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(SessionIDHeader, "1001")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"user_id":"7"`))
	})

	It("resolves the principal from the session cookie", func() {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "1001"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("maps unexpected validation failures to 500", func() {
		auth.validateErr = errors.New("store down")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(SessionIDHeader, "1001")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
