package mailer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/config"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	mailtpl "github.com/Naveenkumar-0814/PurityPropAI/pkg/mailer/templates"
)

// JSONPublisher puts a JSON-encoded message on a queue.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomeNotifier queues a welcome email for newly registered users. The job
// carries the address and display name only.
type WelcomeNotifier struct {
	Pub    JSONPublisher
	Cfg    *config.Config
	Logger *logrus.Logger

	now func() time.Time
}

func NewWelcomeNotifier(pub JSONPublisher, cfg *config.Config, logger *logrus.Logger) *WelcomeNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WelcomeNotifier{Pub: pub, Cfg: cfg, Logger: logger, now: time.Now}
}

func (n *WelcomeNotifier) SendWelcome(ctx context.Context, u *entity.User) error {
	if n.Cfg != nil && !n.Cfg.MailSendEnabled {
		n.Logger.WithField("user_id", u.ID).Debug("mail sending disabled; welcome email skipped")
		return nil
	}
	data := mailtpl.NewWelcomeData(n.Cfg, u.Name, u.Email, mailtpl.WithTime(n.now()))
	job := EmailJob{To: u.Email, Template: mailtpl.Welcome, Data: data}
	if err := n.Pub.PublishJSON(ctx, job); err != nil {
		return err
	}
	n.Logger.WithField("user_id", u.ID).Debug("welcome email queued")
	return nil
}
