package admin_login

import (
	authService "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/auth"
)

type AuthService interface {
	Login(password, clientKey string) (*authService.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
