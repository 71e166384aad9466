package handler

import "github.com/platformlab/accounts-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// --- Response types ---

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type updateProfileResponse struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
}

type listUsersResponse struct {
	Users []domain.PublicUser `json:"users"`
}
