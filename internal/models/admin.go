package models

import "github.com/golang-jwt/jwt/v5"

// AdminScope is the only scope an admin token carries.
const AdminScope = "admin"

// AdminClaims is the payload of an admin session token.
type AdminClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}
