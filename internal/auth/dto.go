package auth

import "github.com/veloracommerce/velora-backend/internal/users"

// RegisterRequest contains the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest contains the login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthPayloadDTO is returned by register and login: the public user profile
// plus a bearer token.
type AuthPayloadDTO struct {
	User  *users.UserDTO `json:"user"`
	Token string         `json:"token"`
}
