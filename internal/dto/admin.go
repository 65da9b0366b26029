package dto

import "time"

// AdminLoginRequest carries the shared admin password.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse returns the admin session token.
type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	ExpiresIn int64     `json:"expires_in"`
}
