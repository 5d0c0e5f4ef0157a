package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
)

type SessionRepository struct {
	db Querier
}

func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores an anonymous session when s.UserID is empty.
func (r *SessionRepository) Create(ctx context.Context, s *entity.ChatSession) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO chat_sessions (user_id)
		VALUES (NULLIF($1, '')::uuid)
		RETURNING id, created_at, updated_at
	`, s.UserID)
	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*entity.ChatSession, error) {
	s := &entity.ChatSession{}
	row := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(user_id::text, ''), created_at, updated_at
		FROM chat_sessions
		WHERE id = $1
	`, id)
	if err := row.Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

// AppendMessage touches the session and inserts the message in one
// statement; no row back means the session does not exist.
func (r *SessionRepository) AppendMessage(ctx context.Context, sessionID string, m *entity.ChatMessage) error {
	row := r.db.QueryRow(ctx, `
		WITH touched AS (
			UPDATE chat_sessions SET updated_at = now()
			WHERE id = $1
			RETURNING id
		)
		INSERT INTO chat_messages (session_id, role, content, language)
		SELECT id, $2, $3, NULLIF($4, '') FROM touched
		RETURNING created_at
	`, sessionID, m.Role, m.Content, m.Language)
	if err := row.Scan(&m.Timestamp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrSessionNotFound
		}
		return err
	}
	return nil
}

func (r *SessionRepository) Messages(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT role, content, COALESCE(language, ''), created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ChatMessage{}
	for rows.Next() {
		var m entity.ChatMessage
		if err := rows.Scan(&m.Role, &m.Content, &m.Language, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
