package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
)

const testSessionID = "3c9d2b7e-1f0a-4e5b-9a6c-7d8e9f0a1b2c"

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("owned session", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery("INSERT INTO chat_sessions").
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(testSessionID, created, created))

		s := &entity.ChatSession{UserID: testUserID}
		require.NoError(t, repo.Create(ctx, s))
		assert.Equal(t, testSessionID, s.ID)
		assert.Equal(t, created, s.CreatedAt)
		assert.Equal(t, created, s.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("anonymous session passes an empty owner", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery(`NULLIF\(\$1, ''\)::uuid`).
			WithArgs("").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(testSessionID, created, created))

		s := &entity.ChatSession{}
		require.NoError(t, repo.Create(ctx, s))
		assert.False(t, s.Owned())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery(`COALESCE\(user_id::text, ''\)`).
			WithArgs(testSessionID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).
				AddRow(testSessionID, testUserID, created, created))

		s, err := repo.FindByID(ctx, testSessionID)
		require.NoError(t, err)
		assert.Equal(t, &entity.ChatSession{ID: testSessionID, UserID: testUserID, CreatedAt: created, UpdatedAt: created}, s)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery("FROM chat_sessions").
			WithArgs(testSessionID).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, testSessionID)
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_AppendMessage(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC)

	t.Run("stamps the message", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery("WITH touched AS").
			WithArgs(testSessionID, entity.RoleUser, "patta transfer?", "en").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(at))

		m := &entity.ChatMessage{Role: entity.RoleUser, Content: "patta transfer?", Language: "en"}
		require.NoError(t, repo.AppendMessage(ctx, testSessionID, m))
		assert.Equal(t, at, m.Timestamp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown session", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery("WITH touched AS").
			WithArgs(testSessionID, entity.RoleUser, "hi", "").
			WillReturnError(pgx.ErrNoRows)

		err := repo.AppendMessage(ctx, testSessionID, &entity.ChatMessage{Role: entity.RoleUser, Content: "hi"})
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_Messages(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	t.Run("in append order", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery("FROM chat_messages").
			WithArgs(testSessionID).
			WillReturnRows(pgxmock.NewRows([]string{"role", "content", "language", "created_at"}).
				AddRow("user", "first", "en", t1).
				AddRow("assistant", "second", "", t2))

		got, err := repo.Messages(ctx, testSessionID)
		require.NoError(t, err)
		assert.Equal(t, []entity.ChatMessage{
			{Role: "user", Content: "first", Language: "en", Timestamp: t1},
			{Role: "assistant", Content: "second", Timestamp: t2},
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty history is an empty slice", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery("FROM chat_messages").
			WithArgs(testSessionID).
			WillReturnRows(pgxmock.NewRows([]string{"role", "content", "language", "created_at"}))

		got, err := repo.Messages(ctx, testSessionID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		repo := NewSessionRepository(mock)

		mock.ExpectQuery("FROM chat_messages").
			WithArgs(testSessionID).
			WillReturnError(errors.New("conn reset"))

		_, err := repo.Messages(ctx, testSessionID)
		assert.EqualError(t, err, "conn reset")
	})
}
