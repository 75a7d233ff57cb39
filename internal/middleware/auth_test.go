package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/middleware"
	"mall-backend/internal/model"
	"mall-backend/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUserStore struct {
	users map[int64]model.User
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	return m.users[id], nil
}

type mockTokenChecker struct {
	revoked map[string]bool
}

func (m *mockTokenChecker) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	return m.revoked[jti], nil
}

func newAuthRouter(mgr scope.Manager, users *mockUserStore, tokens *mockTokenChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, mgr, users, tokens, 60)

	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, _ := middleware.ScopeFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": sc.UserID, "username": sc.Username})
	})
	return r
}

func TestAuth(t *testing.T) {
	mgr := scope.New("test-secret", time.Hour)
	users := &mockUserStore{users: map[int64]model.User{
		5: {ID: 5, Username: "123456"},
	}}
	tokens := &mockTokenChecker{revoked: map[string]bool{}}
	router := newAuthRouter(mgr, users, tokens)

	do := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Missing Header", func(t *testing.T) {
		if w := do(""); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Malformed Header", func(t *testing.T) {
		if w := do("Basic abcdef"); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Invalid Token", func(t *testing.T) {
		if w := do("Bearer not.a.token"); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Valid Token Passes Scope", func(t *testing.T) {
		token, _ := mgr.Generate(5)
		w := do("Bearer " + token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); !strings.Contains(body, `"user_id":5`) || !strings.Contains(body, `"username":"123456"`) {
			t.Errorf("unexpected scope payload: %s", body)
		}
	})

	t.Run("Revoked Token Rejected", func(t *testing.T) {
		token, _ := mgr.Generate(5)
		claims, _ := mgr.Verify(token)
		tokens.revoked[claims.JTI] = true

		if w := do("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for revoked token, got %d", w.Code)
		}
	})

	t.Run("Unknown User Rejected", func(t *testing.T) {
		token, _ := mgr.Generate(404)
		if w := do("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for unknown user, got %d", w.Code)
		}
	})
}
