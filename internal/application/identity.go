package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	repo "github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/helpers"
)

// IdentityResolver turns a bearer access token into the user it names.
// Every failure is ErrUnauthorized; a bad token, an unknown subject and a
// deleted user look the same to the caller.
type IdentityResolver struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewIdentityResolver(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *IdentityResolver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &IdentityResolver{Repo: repo, JWT: jwt, Logger: logger}
}

// Resolve requires a valid access token whose subject still exists.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := r.JWT.ParseToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	// refresh tokens are only good for the refresh exchange
	if !claims.IsAccess() {
		return nil, ErrUnauthorized
	}
	return r.userFor(ctx, claims.Subject)
}

// ResolveOptional is Resolve for routes where authentication is optional. It
// returns nil for a missing or unusable token.
func (r *IdentityResolver) ResolveOptional(ctx context.Context, token string) *entity.User {
	if token == "" {
		return nil
	}
	u, err := r.Resolve(ctx, token)
	if err != nil {
		return nil
	}
	return u
}

// userFor loads the user named by a token subject.
func (r *IdentityResolver) userFor(ctx context.Context, subject string) (*entity.User, error) {
	if subject == "" {
		return nil, ErrUnauthorized
	}
	if _, err := uuid.Parse(subject); err != nil {
		return nil, ErrUnauthorized
	}
	u, err := r.Repo.FindByID(ctx, subject)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			r.Logger.WithError(err).WithField("user_id", subject).Error("user lookup failed")
		}
		return nil, ErrUnauthorized
	}
	return u, nil
}
