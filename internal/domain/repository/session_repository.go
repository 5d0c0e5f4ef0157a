package repository

import (
	"context"
	"errors"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores chat sessions and their messages. Messages come
// back in the order they were appended.
type SessionRepository interface {
	// Create stores s and assigns its ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, s *entity.ChatSession) error
	FindByID(ctx context.Context, id string) (*entity.ChatSession, error)
	// AppendMessage stores m, sets its Timestamp and bumps the session's
	// UpdatedAt. An unknown session is ErrSessionNotFound.
	AppendMessage(ctx context.Context, sessionID string, m *entity.ChatMessage) error
	Messages(ctx context.Context, sessionID string) ([]entity.ChatMessage, error)
}
