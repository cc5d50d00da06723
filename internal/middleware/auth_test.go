package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUsers struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUsers) UpsertByGoogleID(ctx context.Context, u *entity.User) (*entity.User, error) {
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) SetPremium(ctx context.Context, id uuid.UUID, premium bool) (*entity.User, error) {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsPremium = premium
	return u, nil
}

func authTestSetup(t *testing.T) (*gin.Engine, *common.AuthConfig, *entity.User) {
	t.Helper()
	cfg := &common.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	user := &entity.User{ID: uuid.New(), Email: "u@example.com"}
	users := &fakeUsers{users: map[uuid.UUID]*entity.User{user.ID: user}}

	r := gin.New()
	r.GET("/protected", Auth(cfg, users), func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})
	return r, cfg, user
}

func TestAuthAcceptsCookie(t *testing.T) {
	r, cfg, user := authTestSetup(t)
	token, _, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	r, cfg, user := authTestSetup(t)
	token, _, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r, _, _ := authTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	r, _, _ := authTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	r, cfg, user := authTestSetup(t)

	claims := Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsUnknownUser(t *testing.T) {
	r, cfg, _ := authTestSetup(t)
	ghost := &entity.User{ID: uuid.New(), Email: "gone@example.com"}
	token, _, err := GenerateToken(ghost, cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
