package application

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	repo "github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/helpers"
)

// WelcomeSender is notified after a successful registration.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, u *entity.User) error
}

// AuthService implements register, login, refresh and who-am-i.
type AuthService struct {
	Repo     repo.UserRepository
	Hasher   *helpers.PasswordHasher
	JWT      *helpers.JWTManager
	Identity *IdentityResolver
	Welcome  WelcomeSender
	Logger   *logrus.Logger

	// verifier checked against when the email is unknown, so login takes
	// the same time either way
	dummyHash string
}

// AuthResult is what every token-granting use-case returns.
type AuthResult struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
	User               *entity.User
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// NewAuthService wires the use-cases. welcome may be nil.
func NewAuthService(repo repo.UserRepository, hasher *helpers.PasswordHasher, jwt *helpers.JWTManager, identity *IdentityResolver, welcome WelcomeSender, logger *logrus.Logger) (*AuthService, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	dummy, err := hasher.Hash("timing-equalizer")
	if err != nil {
		return nil, oops.Code("AUTH_INIT_FAILED").With("operation", "hash dummy password").Wrap(err)
	}
	return &AuthService{
		Repo:      repo,
		Hasher:    hasher,
		JWT:       jwt,
		Identity:  identity,
		Welcome:   welcome,
		Logger:    logger,
		dummyHash: dummy,
	}, nil
}

// Register creates a user and signs them in. The email pre-check is a fast
// path only; the repository's uniqueness guarantee decides races.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	_, err := s.Repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, repo.ErrNotFound):
		return nil, oops.Code("AUTH_REGISTER_FAILED").With("operation", "find user by email").Wrap(err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").With("operation", "hash password").Wrap(err)
	}

	u := &entity.User{Email: in.Email, PasswordHash: hash, Name: in.Name}
	if err := s.Repo.Insert(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, oops.Code("AUTH_REGISTER_FAILED").With("operation", "insert user").Wrap(err)
	}
	s.Logger.WithField("user_id", u.ID).Info("user registered")

	res, err := s.issuePair(u)
	if err != nil {
		return nil, err
	}

	if s.Welcome != nil {
		if wErr := s.Welcome.SendWelcome(ctx, u); wErr != nil {
			s.Logger.WithError(wErr).WithField("user_id", u.ID).Warn("welcome email not queued")
		}
	}
	return res, nil
}

// Login checks email and password. Unknown email and wrong password are the
// same failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, oops.Code("AUTH_LOGIN_FAILED").With("operation", "find user by email").Wrap(err)
		}
		_ = s.Hasher.Verify(password, s.dummyHash)
		return nil, ErrInvalidCredentials
	}
	if !s.Hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issuePair(u)
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token itself is returned unchanged and stays valid until it expires.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.JWT.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !claims.IsRefresh() {
		return nil, ErrUnauthorized
	}
	u, err := s.Identity.userFor(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	access, aexp, err := s.JWT.GenerateAccessToken(claims.Subject)
	if err != nil {
		return nil, s.issueFailed(err, u.ID)
	}
	res := &AuthResult{
		AccessToken:       access,
		AccessTokenExpiry: aexp,
		RefreshToken:      refreshToken,
		User:              u,
	}
	if claims.ExpiresAt != nil {
		res.RefreshTokenExpiry = claims.ExpiresAt.Time
	}
	return res, nil
}

// WhoAmI returns the user behind an access token.
func (s *AuthService) WhoAmI(ctx context.Context, accessToken string) (*entity.User, error) {
	return s.Identity.Resolve(ctx, accessToken)
}

func (s *AuthService) issuePair(u *entity.User) (*AuthResult, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, s.issueFailed(err, u.ID)
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, s.issueFailed(err, u.ID)
	}
	return &AuthResult{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
		User:               u,
	}, nil
}

// issueFailed reports a signing failure, which means the service is misconfigured.
func (s *AuthService) issueFailed(err error, userID string) error {
	s.Logger.WithError(err).WithField("user_id", userID).Error("token issuance failed")
	return oops.Code("AUTH_TOKEN_ISSUE_FAILED").With("user_id", userID).Wrap(err)
}
