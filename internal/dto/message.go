package dto

// CreateMessageRequest is the public contact form payload.
type CreateMessageRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=40"`
	Destination *string `json:"destination" validate:"omitempty,max=100"`
	Message     string  `json:"message" validate:"required,max=5000"`
}

// UpdateMessageStatusRequest changes a message's status.
type UpdateMessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read replied"`
}
