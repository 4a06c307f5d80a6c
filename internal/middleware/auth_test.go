package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helpdesk/backend/internal/auth"
	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/middleware"
	"helpdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestRouter(resolver middleware.UserResolver, tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Authenticate(resolver, tokens))
	r.GET("/probe", func(ctx *gin.Context) {
		user, _ := middleware.CurrentUser(ctx)
		ctx.JSON(http.StatusOK, user)
	})
	return r
}

func request(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: config.SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	resolver := new(MockResolver)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	rec := request(newTestRouter(resolver, tokens), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resolver.AssertNotCalled(t, "GetUserByID", mock.Anything)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	resolver := new(MockResolver)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	rec := request(newTestRouter(resolver, tokens), "garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resolver.AssertNotCalled(t, "GetUserByID", mock.Anything)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	resolver := new(MockResolver)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	user := &models.User{Model: gorm.Model{ID: 5}, Email: "gone@example.com", Role: models.RoleUser}
	token, err := tokens.Issue(user)
	assert.NoError(t, err)

	resolver.On("GetUserByID", uint(5)).Return(nil, nil)

	rec := request(newTestRouter(resolver, tokens), token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no longer exists")
}

func TestAuthenticate_ValidSession(t *testing.T) {
	resolver := new(MockResolver)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	user := &models.User{Model: gorm.Model{ID: 5}, Email: "jane@example.com", FullName: "Jane Doe", Role: models.RoleUser}
	token, err := tokens.Issue(user)
	assert.NoError(t, err)

	resolver.On("GetUserByID", uint(5)).Return(user, nil)

	rec := request(newTestRouter(resolver, tokens), token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
}

// The attached identity follows the current user row, not the token claims,
// so a role change takes effect before the token expires.
func TestAuthenticate_RoleFollowsStore(t *testing.T) {
	resolver := new(MockResolver)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue(&models.User{Model: gorm.Model{ID: 5}, Role: models.RoleAdmin})
	assert.NoError(t, err)

	demoted := &models.User{Model: gorm.Model{ID: 5}, Role: models.RoleUser}
	resolver.On("GetUserByID", uint(5)).Return(demoted, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Authenticate(resolver, tokens), middleware.RequireRoles(models.RoleAdmin))
	r.GET("/probe", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: config.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		identity  *middleware.AuthenticatedUser
		permitted []string
		want      int
	}{
		{"no identity", nil, []string{models.RoleAdmin}, http.StatusUnauthorized},
		{"wrong role", &middleware.AuthenticatedUser{ID: 1, Role: models.RoleUser}, []string{models.RoleAdmin}, http.StatusForbidden},
		{"permitted role", &middleware.AuthenticatedUser{ID: 1, Role: models.RoleAdmin}, []string{models.RoleAdmin}, http.StatusOK},
		{"empty set rejects everyone", &middleware.AuthenticatedUser{ID: 1, Role: models.RoleAdmin}, nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			if tt.identity != nil {
				identity := *tt.identity
				r.Use(func(ctx *gin.Context) { ctx.Set(middleware.ContextUserKey, identity) })
			}
			r.Use(middleware.RequireRoles(tt.permitted...))
			r.GET("/probe", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
