package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

var messageRowColumns = []string{"id", "name", "email", "phone", "destination", "message", "status", "replied_at", "created_at"}

func TestMessageRepositoryCreateUnread(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	msg := &models.Message{Name: "Karim", Email: "k@example.com", Message: "Hello"}
	require.NoError(t, repo.Create(context.Background(), msg))
	assert.Equal(t, models.MessageStatusUnread, msg.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryUpdateStatusStampsReply(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE messages SET status = $2, replied_at = COALESCE($3, replied_at) WHERE id = $1")).
		WithArgs("m1", "replied", at).
		WillReturnRows(sqlmock.NewRows(messageRowColumns).AddRow("m1", "Karim", "k@example.com", nil, "Italy", "Hello", "replied", at, at))

	msg, err := repo.UpdateStatus(context.Background(), "m1", models.MessageStatusReplied, &at)
	require.NoError(t, err)
	require.NotNil(t, msg.RepliedAt)
	assert.True(t, at.Equal(*msg.RepliedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM messages ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(messageRowColumns).AddRow("m1", "Karim", "k@example.com", nil, nil, "Hello", "unread", nil, time.Now()))

	messages, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Nil(t, messages[0].RepliedAt)
}
