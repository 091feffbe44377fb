package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const tokenBytes = 32

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Session активная админская сессия
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Service сервис аутентификации администратора. Хранит сессии в памяти:
// единственный админ, рестарт процесса разлогинивает - это приемлемо.
type Service struct {
	passwordHash []byte
	sessionTTL   time.Duration
	limiter      *loginLimiter
	timeProvider TimeProvider
	logger       Logger

	mu       sync.RWMutex
	sessions map[string]time.Time
}

// NewService создает новый экземпляр сервиса аутентификации.
// passwordHash - bcrypt-хеш админского пароля из конфигурации.
func NewService(passwordHash string, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		sessionTTL:   sessionTTL,
		limiter:      newLoginLimiter(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]time.Time),
	}
}

// Login проверяет пароль и выдает токен сессии с фиксированным TTL.
// clientKey идентифицирует клиента для rate limiting (обычно IP).
func (s *Service) Login(password, clientKey string) (*Session, error) {
	now := s.timeProvider.Now()

	if !s.limiter.Allowed(clientKey, now) {
		s.logger.Warn("Login: client %s is locked out", clientKey)
		return nil, ErrTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.limiter.RegisterFailure(clientKey, now)
		s.logger.Warn("Login: invalid password from %s", clientKey)
		return nil, ErrInvalidCredentials
	}

	s.limiter.Reset(clientKey)

	token, err := generateToken()
	if err != nil {
		s.logger.Error("Login: failed to generate token: %v", err)
		return nil, fmt.Errorf("%w: generate token: %v", ErrInternal, err)
	}

	expiresAt := now.Add(s.sessionTTL)

	s.mu.Lock()
	s.sessions[token] = expiresAt
	s.mu.Unlock()

	s.logger.Info("Login: admin session created, expires at %s", expiresAt.Format(time.RFC3339))

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Validate проверяет токен сессии. Истекшие сессии удаляются лениво.
func (s *Service) Validate(token string) error {
	s.mu.RLock()
	expiresAt, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}

	if s.timeProvider.Now().After(expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return ErrSessionNotFound
	}

	return nil
}

// Logout завершает сессию. Неизвестный токен не считается ошибкой.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	s.logger.Info("Logout: admin session terminated")
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
