package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/platformlab/accounts-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	created := cloneUser(user)
	r.nextID++
	created.ID = string(rune('a' + r.nextID))
	r.byEmail[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) UpdateName(_ context.Context, id, name string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.Name = name
			u.UpdatedAt = time.Now().UTC()
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	tokens := NewJWTManager("secret", time.Hour)
	return NewAuthService(repo, hasher, tokens)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if err := svc.Register(context.Background(), "Ana Li", "Ana@X.com ", "longenough1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored, ok := repo.byEmail["ana@x.com"]
	if !ok {
		t.Fatalf("user not stored under normalized email: %v", repo.byEmail)
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("role not forced to user: %s", stored.Role)
	}
	if stored.PasswordHash == "longenough1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", stored)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if err := svc.Register(context.Background(), "Ana Li", "ana@x.com", "longenough1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Different case, different password: still the same account.
	err := svc.Register(context.Background(), "Other Ana", "ANA@X.COM", "anotherpass9")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if err := svc.Register(context.Background(), "Ana Li", "ana@x.com", "longenough1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Ana@X.com", "longenough1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "ana@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := NewJWTManager("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if err := svc.Register(context.Background(), "Ana Li", "ana@x.com", "longenough1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "ana@x.com", "wrongpassword")
	_, _, noUser := svc.Login(context.Background(), "ghost@x.com", "longenough1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, noUser)
	}
}
