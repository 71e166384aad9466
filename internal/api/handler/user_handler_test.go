package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/platformlab/accounts-api/internal/api/middleware"
	"github.com/platformlab/accounts-api/internal/core/domain"
)

type stubUserService struct {
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	updateFn func(ctx context.Context, id, name string) (*domain.User, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
}

func (s *stubUserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	return s.updateFn(ctx, id, name)
}

func (s *stubUserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func newClaimsContext(method, path, body string, claims *domain.Claims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		middleware.SetClaims(c, claims)
	}
	return c, rec
}

func anaClaims() *domain.Claims {
	return &domain.Claims{UserID: "u-1", Email: "ana@x.com", Role: domain.RoleUser}
}

func TestUserHandler_Me(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "u-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{
				ID:           "u-1",
				Name:         "Ana Li",
				Email:        "ana@x.com",
				PasswordHash: "digest",
				Role:         domain.RoleUser,
				CreatedAt:    time.Now().UTC(),
				UpdatedAt:    time.Now().UTC(),
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newClaimsContext(http.MethodGet, "/users/me", "", anaClaims())

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u-1" || resp["name"] != "Ana Li" || resp["role"] != "user" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if _, present := resp["password_hash"]; present {
		t.Fatalf("password digest leaked: %v", resp)
	}
}

func TestUserHandler_Me_NoIdentity(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newClaimsContext(http.MethodGet, "/users/me", "", nil)

	if err := h.Me(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestUserHandler_Me_Vanished(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newClaimsContext(http.MethodGet, "/users/me", "", anaClaims())

	if err := h.Me(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_UpdateMe(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id, name string) (*domain.User, error) {
			if id != "u-1" || name != "Ana Lima" {
				t.Fatalf("unexpected args: %s %s", id, name)
			}
			return &domain.User{ID: "u-1", Name: name, Email: "ana@x.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newClaimsContext(http.MethodPut, "/users/me", `{"name":" Ana Lima "}`, anaClaims())

	if err := h.UpdateMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp updateProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message == "" || resp.User.Name != "Ana Lima" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_UpdateMe_NameTooShort(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id, name string) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newClaimsContext(http.MethodPut, "/users/me", `{"name":"A"}`, anaClaims())

	err := h.UpdateMe(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u-2", Name: "Bo Chen", Email: "bo@x.com", Role: domain.RoleUser, CreatedAt: now},
				{ID: "u-1", Name: "Ana Li", Email: "ana@x.com", Role: domain.RoleAdmin, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newClaimsContext(http.MethodGet, "/users", "",
		&domain.Claims{UserID: "u-1", Role: domain.RoleAdmin})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Users))
	}
	// Order comes from the repository: most recent first.
	if resp.Users[0].ID != "u-2" || resp.Users[1].ID != "u-1" {
		t.Fatalf("order not preserved: %+v", resp.Users)
	}
}
