package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveenkumar-0814/PurityPropAI/config"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
)

type capturePublisher struct {
	bodies []any
	err    error
}

func (p *capturePublisher) PublishJSON(_ context.Context, body any) error {
	p.bodies = append(p.bodies, body)
	return p.err
}

type captureSender struct {
	to, subject, text, html string
	calls                   int
	err                     error
}

func (s *captureSender) Send(_ context.Context, to, subject, text, html string) error {
	s.calls++
	s.to, s.subject, s.text, s.html = to, subject, text, html
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:         "PurityProp AI",
		CompanyName:     "PurityProp",
		AppURL:          "https://app.example.com",
		MailSendEnabled: true,
	}
}

func TestWelcomeNotifier(t *testing.T) {
	u := &entity.User{ID: "u-1", Email: "a@b.com", Name: "Asha", PasswordHash: "secret-verifier"}

	t.Run("queues a welcome job", func(t *testing.T) {
		pub := &capturePublisher{}
		n := NewWelcomeNotifier(pub, testConfig(), nil)
		n.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC) }

		require.NoError(t, n.SendWelcome(context.Background(), u))
		require.Len(t, pub.bodies, 1)

		job, ok := pub.bodies[0].(EmailJob)
		require.True(t, ok)
		assert.Equal(t, "a@b.com", job.To)
		assert.Equal(t, "welcome", job.Template)
		assert.Equal(t, "Asha", job.Data["Name"])

		raw, err := json.Marshal(job)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "secret-verifier")
	})

	t.Run("disabled sending publishes nothing", func(t *testing.T) {
		pub := &capturePublisher{}
		cfg := testConfig()
		cfg.MailSendEnabled = false
		require.NoError(t, NewWelcomeNotifier(pub, cfg, nil).SendWelcome(context.Background(), u))
		assert.Empty(t, pub.bodies)
	})

	t.Run("publish error is returned", func(t *testing.T) {
		pub := &capturePublisher{err: errors.New("channel closed")}
		err := NewWelcomeNotifier(pub, testConfig(), nil).SendWelcome(context.Background(), u)
		assert.Error(t, err)
	})
}

func TestWorkerHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and sends a template job", func(t *testing.T) {
		s := &captureSender{}
		w := NewWorker(s, nil)
		body := `{"to":"a@b.com","template":"welcome","data":{"Name":"Asha","AppName":"PurityProp AI"}}`

		require.NoError(t, w.Handle(ctx, []byte(body)))
		assert.Equal(t, 1, s.calls)
		assert.Equal(t, "a@b.com", s.to)
		assert.Equal(t, "Welcome to PurityProp AI", s.subject)
		assert.Contains(t, s.text, "Hello Asha")
		assert.Contains(t, s.text, "a@b.com")
		assert.Contains(t, s.html, "<strong>a@b.com</strong>")
	})

	t.Run("raw job is sent as is", func(t *testing.T) {
		s := &captureSender{}
		body := `{"to":"a@b.com","subject":"Hi","text":"plain"}`
		require.NoError(t, NewWorker(s, nil).Handle(ctx, []byte(body)))
		assert.Equal(t, "Hi", s.subject)
		assert.Equal(t, "plain", s.text)
	})

	t.Run("bad jobs are not retried", func(t *testing.T) {
		for name, body := range map[string]string{
			"invalid json":     `{`,
			"no recipient":     `{"template":"welcome"}`,
			"unknown template": `{"to":"a@b.com","template":"nope"}`,
			"empty message":    `{"to":"a@b.com","subject":"Hi"}`,
		} {
			s := &captureSender{}
			err := NewWorker(s, nil).Handle(ctx, []byte(body))
			assert.ErrorIs(t, err, ErrBadJob, name)
			assert.Zero(t, s.calls, name)
		}
	})

	t.Run("send failure is retryable", func(t *testing.T) {
		s := &captureSender{err: errors.New("mailgun 503")}
		err := NewWorker(s, nil).Handle(ctx, []byte(`{"to":"a@b.com","subject":"Hi","text":"x"}`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBadJob)
	})
}
