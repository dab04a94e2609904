package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/internal/users"
	pkgauth "github.com/veloracommerce/velora-backend/pkg/auth"
	"github.com/veloracommerce/velora-backend/pkg/auth/session"
	"github.com/veloracommerce/velora-backend/pkg/config"
	pkgdb "github.com/veloracommerce/velora-backend/pkg/db"
	"github.com/veloracommerce/velora-backend/pkg/db/models"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
	"github.com/veloracommerce/velora-backend/pkg/security"
)

const (
	invalidCredentialsMessage = "Invalid credentials."
	emailTakenMessage         = "The email has already been taken."
	uniqueEmailConstraint     = "users_email_key"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthPayloadDTO, error)
	Login(ctx context.Context, req LoginRequest) (*AuthPayloadDTO, error)
	Logout(ctx context.Context, accessID string) error
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type sessionManager interface {
	Create(ctx context.Context, accessID string, userID uuid.UUID) error
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

type service struct {
	users       userRepository
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		users:       params.UserRepo,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Register creates the account and immediately issues a token for it.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthPayloadDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if pkgdb.IsUniqueViolation(err, uniqueEmailConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").
				WithDetails(map[string][]string{"email": {emailTakenMessage}})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert user")
	}

	return s.issueToken(ctx, user)
}

// Login authenticates by email and password. Both an unknown email and a
// wrong password resolve to the same field-keyed validation failure.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthPayloadDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials(err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, invalidCredentials(nil)
	}

	return s.issueToken(ctx, user)
}

// Logout revokes the session behind the presented token.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session")
	}
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *service) issueToken(ctx context.Context, user *models.User) (*AuthPayloadDTO, error) {
	accessID := session.NewAccessID()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	if err := s.session.Create(ctx, accessID, user.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store session")
	}

	return &AuthPayloadDTO{
		User:  users.FromModel(user),
		Token: token,
	}, nil
}

func invalidCredentials(cause error) *pkgerrors.Error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, cause, "validation failed").
		WithDetails(map[string][]string{"email": {invalidCredentialsMessage}})
}
