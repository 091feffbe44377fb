package auth

import (
	"sync"
	"time"
)

const (
	maxAttempts    = 5
	attemptsWindow = 15 * time.Minute
	lockoutPeriod  = 30 * time.Minute
)

// loginLimiter отслеживает неудачные попытки входа по ключу клиента.
// После maxAttempts неудач в пределах attemptsWindow клиент блокируется
// на lockoutPeriod. Успешный вход сбрасывает счётчик.
type loginLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientAttempts
}

type clientAttempts struct {
	failures    []time.Time
	lockedUntil time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		clients: make(map[string]*clientAttempts),
	}
}

// Allowed проверяет, может ли клиент выполнить попытку входа прямо сейчас.
func (l *loginLimiter) Allowed(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		return true
	}
	return now.After(c.lockedUntil)
}

// RegisterFailure записывает неудачную попытку и при превышении лимита
// ставит блокировку.
func (l *loginLimiter) RegisterFailure(key string, now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &clientAttempts{}
		l.clients[key] = c
	}

	cutoff := now.Add(-attemptsWindow)
	recent := c.failures[:0]
	for _, t := range c.failures {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	c.failures = append(recent, now)

	if len(c.failures) >= maxAttempts {
		c.lockedUntil = now.Add(lockoutPeriod)
		c.failures = nil
	}
}

// Reset снимает счётчик для клиента после успешного входа.
func (l *loginLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.clients, key)
}
