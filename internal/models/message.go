package models

import "time"

// MessageStatus tracks how far the team got with a contact message.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// Valid reports whether s is a known status.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// Message is a contact form submission.
type Message struct {
	ID          string        `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Email       string        `db:"email" json:"email"`
	Phone       *string       `db:"phone" json:"phone"`
	Destination *string       `db:"destination" json:"destination"`
	Message     string        `db:"message" json:"message"`
	Status      MessageStatus `db:"status" json:"status"`
	RepliedAt   *time.Time    `db:"replied_at" json:"replied_at"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}
