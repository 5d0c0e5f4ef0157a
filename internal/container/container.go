package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/config"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/infrastructure/memory"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/helpers"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/knowledge"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/mailer"
)

// Infra is what the process opened before wiring: the user and session
// stores and, when configured, the Postgres pool behind them and the email
// queue publisher.
type Infra struct {
	Users     repository.UserRepository
	Sessions  repository.SessionRepository
	Pool      *pgxpool.Pool
	Publisher *helpers.RabbitPublisher
}

// Container holds the constructed components shared by the router modules.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Users     repository.UserRepository
	Sessions  repository.SessionRepository
	Pool      *pgxpool.Pool
	Publisher *helpers.RabbitPublisher

	Hasher   *helpers.PasswordHasher
	JWT      *helpers.JWTManager
	Identity *application.IdentityResolver
	Auth     *application.AuthService
	Chat     *application.SessionService
}

// New builds the auth and session components from cfg on top of infra. A
// missing session store falls back to an in-process one.
func New(cfg *config.Config, logger *logrus.Logger, infra Infra) (*Container, error) {
	jwt, err := helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTTL, cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	hasher := helpers.NewPasswordHasher(cfg.BcryptCost)
	identity := application.NewIdentityResolver(infra.Users, jwt, logger)

	var welcome application.WelcomeSender
	if infra.Publisher != nil {
		welcome = mailer.NewWelcomeNotifier(infra.Publisher, cfg, logger)
	}

	auth, err := application.NewAuthService(infra.Users, hasher, jwt, identity, welcome, logger)
	if err != nil {
		return nil, err
	}

	sessions := infra.Sessions
	if sessions == nil {
		sessions = memory.NewSessionRepository()
	}
	chat := application.NewSessionService(sessions, knowledge.Default, logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Users:     infra.Users,
		Sessions:  sessions,
		Pool:      infra.Pool,
		Publisher: infra.Publisher,
		Hasher:    hasher,
		JWT:       jwt,
		Identity:  identity,
		Auth:      auth,
		Chat:      chat,
	}, nil
}

// Close releases the publisher and the pool.
func (c *Container) Close() {
	c.Publisher.Close()
	if c.Pool != nil {
		c.Pool.Close()
	}
}
