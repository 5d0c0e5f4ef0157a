package application

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	repo "github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/knowledge"
)

// SessionService opens chat sessions, records messages and reads history.
// A session opened while signed in is visible to its owner only; an
// anonymous one to anyone holding its ID.
type SessionService struct {
	Repo      repo.SessionRepository
	Knowledge knowledge.Base
	Logger    *logrus.Logger
}

// MessageResult is the stored message plus the reference context matched
// for it.
type MessageResult struct {
	SessionID string
	Message   entity.ChatMessage
	Context   string
	Topics    []string
}

func NewSessionService(repo repo.SessionRepository, base knowledge.Base, logger *logrus.Logger) *SessionService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SessionService{Repo: repo, Knowledge: base, Logger: logger}
}

// Create opens a session owned by owner, or an anonymous one when owner is nil.
func (s *SessionService) Create(ctx context.Context, owner *entity.User) (*entity.ChatSession, error) {
	cs := &entity.ChatSession{}
	if owner != nil {
		cs.UserID = owner.ID
	}
	if err := s.Repo.Create(ctx, cs); err != nil {
		return nil, oops.Code("SESSION_CREATE_FAILED").With("user_id", cs.UserID).Wrap(err)
	}
	return cs, nil
}

// PostMessage appends a user message to the session and returns the
// knowledge context that matches it. No reply is generated here.
func (s *SessionService) PostMessage(ctx context.Context, id string, caller *entity.User, content string) (*MessageResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	cs, err := s.access(ctx, id, caller)
	if err != nil {
		return nil, err
	}

	m := &entity.ChatMessage{Role: entity.RoleUser, Content: content, Language: DetectLanguage(content)}
	if err := s.Repo.AppendMessage(ctx, cs.ID, m); err != nil {
		if errors.Is(err, repo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, oops.Code("SESSION_APPEND_FAILED").With("session_id", cs.ID).Wrap(err)
	}

	topics := s.Knowledge.Match(content)
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	return &MessageResult{
		SessionID: cs.ID,
		Message:   *m,
		Context:   s.Knowledge.ContextFor(content),
		Topics:    names,
	}, nil
}

// History returns the session and its messages, oldest first.
func (s *SessionService) History(ctx context.Context, id string, caller *entity.User) (*entity.ChatSession, []entity.ChatMessage, error) {
	cs, err := s.access(ctx, id, caller)
	if err != nil {
		return nil, nil, err
	}
	msgs, err := s.Repo.Messages(ctx, cs.ID)
	if err != nil {
		if errors.Is(err, repo.ErrSessionNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, oops.Code("SESSION_HISTORY_FAILED").With("session_id", cs.ID).Wrap(err)
	}
	return cs, msgs, nil
}

// access loads the session if caller may see it. Malformed, missing and
// foreign sessions all come back as ErrSessionNotFound.
func (s *SessionService) access(ctx context.Context, id string, caller *entity.User) (*entity.ChatSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}
	cs, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, oops.Code("SESSION_LOOKUP_FAILED").With("session_id", id).Wrap(err)
	}
	if cs.Owned() && (caller == nil || caller.ID != cs.UserID) {
		return nil, ErrSessionNotFound
	}
	return cs, nil
}

// DetectLanguage tags text as Tamil ("ta") when it contains Tamil script and
// English ("en") otherwise.
func DetectLanguage(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Tamil, r) {
			return "ta"
		}
	}
	return "en"
}
