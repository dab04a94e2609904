package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/internal/users"
	pkgauth "github.com/veloracommerce/velora-backend/pkg/auth"
	"github.com/veloracommerce/velora-backend/pkg/config"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
	"github.com/veloracommerce/velora-backend/pkg/security"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	created []users.CreateUserDTO
}

func (s *stubUserRepo) Create(_ context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if _, exists := s.byEmail[dto.Email]; exists {
		return nil, errors.New(`duplicate key value violates unique constraint "users_email_key"`)
	}
	s.created = append(s.created, dto)
	user := &models.User{
		ID:           uuid.New(),
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
	}
	if s.byEmail == nil {
		s.byEmail = map[string]*models.User{}
	}
	s.byEmail[dto.Email] = user
	return user, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type stubSessions struct {
	active map[string]uuid.UUID
}

func (s *stubSessions) Create(_ context.Context, accessID string, userID uuid.UUID) error {
	if s.active == nil {
		s.active = map[string]uuid.UUID{}
	}
	s.active[accessID] = userID
	return nil
}

func (s *stubSessions) Revoke(_ context.Context, accessID string) error {
	delete(s.active, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "velora", ExpirationMinutes: 30}
}

func newTestService(t *testing.T) (Service, *stubUserRepo, *stubSessions) {
	t.Helper()
	repo := &stubUserRepo{byEmail: map[string]*models.User{}}
	sessions := &stubSessions{}
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo, sessions
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, repo, sessions := newTestService(t)

	payload, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "John",
		Email:    "John@Example.com",
		Password: "password",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if payload.User == nil || payload.User.Email != "john@example.com" {
		t.Fatalf("expected normalized email, got %+v", payload.User)
	}
	if payload.Token == "" {
		t.Fatalf("expected token")
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), payload.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != payload.User.ID {
		t.Fatalf("token bound to wrong user")
	}
	if _, ok := sessions.active[claims.ID]; !ok {
		t.Fatalf("expected a stored session for the token jti")
	}

	if len(repo.created) != 1 || repo.created[0].PasswordHash == "password" {
		t.Fatalf("expected hashed password to be persisted")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Password: "password"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterRequest{Name: "B", Email: "a@example.com", Password: "password"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	details, ok := typed.Details().(map[string][]string)
	if !ok || len(details["email"]) == 0 {
		t.Fatalf("expected email field errors, got %v", typed.Details())
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Name: "John", Email: "john@example.com", Password: "password"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	payload, err := svc.Login(ctx, LoginRequest{Email: "john@example.com", Password: "password"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if payload.Token == "" {
		t.Fatalf("expected token")
	}
	if _, err := pkgauth.ParseAccessToken(testJWTConfig(), payload.Token); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	hash, err := security.HashPassword("correct-password", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo.byEmail["jane@example.com"] = &models.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: hash}

	cases := []LoginRequest{
		{Email: "jane@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "whatever"},
	}
	for _, req := range cases {
		_, err := svc.Login(ctx, req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation failure for %s, got %v", req.Email, err)
		}
		details, ok := typed.Details().(map[string][]string)
		if !ok || len(details["email"]) != 1 || details["email"][0] != "Invalid credentials." {
			t.Fatalf("unexpected details %v", typed.Details())
		}
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newTestService(t)
	ctx := context.Background()

	payload, err := svc.Register(ctx, RegisterRequest{Name: "John", Email: "john@example.com", Password: "password"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), payload.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if err := svc.Logout(ctx, claims.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.active[claims.ID]; ok {
		t.Fatalf("expected session to be gone")
	}

	if err := svc.Logout(ctx, " "); err == nil {
		t.Fatalf("expected error for blank access id")
	}
}
