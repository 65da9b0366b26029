package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

const messageColumns = `id, name, email, phone, destination, message, status, replied_at, created_at`

// MessageRepository handles persistence of contact messages.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository constructs the repository.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// List returns messages newest first.
func (r *MessageRepository) List(ctx context.Context) ([]models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY created_at DESC`
	var messages []models.Message
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// Create stores a new unread message.
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if msg.Status == "" {
		msg.Status = models.MessageStatusUnread
	}
	const query = `INSERT INTO messages (` + messageColumns + `)
        VALUES (:id, :name, :email, :phone, :destination, :message, :status, :replied_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// UpdateStatus changes a message status. A non-nil repliedAt overwrites the
// stored reply time; nil keeps it.
func (r *MessageRepository) UpdateStatus(ctx context.Context, id string, status models.MessageStatus, repliedAt *time.Time) (*models.Message, error) {
	query := `UPDATE messages SET status = $2, replied_at = COALESCE($3, replied_at) WHERE id = $1 RETURNING ` + messageColumns
	var msg models.Message
	if err := r.db.GetContext(ctx, &msg, query, id, status, repliedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update message status: %w", err)
	}
	return &msg, nil
}
