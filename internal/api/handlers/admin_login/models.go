package admin_login

import (
	"time"

	authService "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *authService.Session) *LoginResponse {
	return &LoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
	}
}
