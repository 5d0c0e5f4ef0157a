package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
)

type sessionRecord struct {
	session  entity.ChatSession
	messages []entity.ChatMessage
}

type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionRecord
	now      func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*sessionRecord),
		now:      time.Now,
	}
}

func (r *SessionRepository) Create(_ context.Context, s *entity.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = r.now().UTC()
	s.UpdatedAt = s.CreatedAt
	r.sessions[s.ID] = &sessionRecord{session: *s}
	return nil
}

func (r *SessionRepository) FindByID(_ context.Context, id string) (*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	s := rec.session
	return &s, nil
}

func (r *SessionRepository) AppendMessage(_ context.Context, sessionID string, m *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[sessionID]
	if !ok {
		return repository.ErrSessionNotFound
	}
	m.Timestamp = r.now().UTC()
	rec.messages = append(rec.messages, *m)
	rec.session.UpdatedAt = m.Timestamp
	return nil
}

func (r *SessionRepository) Messages(_ context.Context, sessionID string) ([]entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	out := make([]entity.ChatMessage, len(rec.messages))
	copy(out, rec.messages)
	return out, nil
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
