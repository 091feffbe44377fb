package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTooManyAttempts возвращается, когда клиент заблокирован за превышение попыток входа
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrSessionNotFound возвращается при неизвестном или истекшем токене сессии
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
