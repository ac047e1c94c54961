package request

import (
	"hotel-back-office/internal/usecase/commands"
)

// LoginRequest lives in the commands package so the usecase layer can
// reference it without importing this package; the alias keeps the
// handler-facing name stable.
type LoginRequest = commands.LoginRequest

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
