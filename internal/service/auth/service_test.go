package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const testPassword = "segreto-admin"

func newTestService(t *testing.T) (*Service, *fakeTimeProvider) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	tp := &fakeTimeProvider{now: time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)}
	svc := NewService(string(hash), 24*time.Hour, nopLogger{})
	svc.timeProvider = tp
	return svc, tp
}

func TestLogin(t *testing.T) {
	t.Run("correct password yields session", func(t *testing.T) {
		svc, tp := newTestService(t)

		session, err := svc.Login(testPassword, "10.0.0.1")
		require.NoError(t, err)

		assert.Len(t, session.Token, tokenBytes*2)
		assert.Equal(t, tp.now.Add(24*time.Hour), session.ExpiresAt)
		assert.NoError(t, svc.Validate(session.Token))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Login("sbagliata", "10.0.0.1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("tokens are unique per login", func(t *testing.T) {
		svc, _ := newTestService(t)

		first, err := svc.Login(testPassword, "10.0.0.1")
		require.NoError(t, err)
		second, err := svc.Login(testPassword, "10.0.0.1")
		require.NoError(t, err)

		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestLoginRateLimit(t *testing.T) {
	t.Run("lockout after five failures", func(t *testing.T) {
		svc, _ := newTestService(t)

		for i := 0; i < maxAttempts; i++ {
			_, err := svc.Login("sbagliata", "10.0.0.1")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		}

		_, err := svc.Login(testPassword, "10.0.0.1")
		assert.ErrorIs(t, err, ErrTooManyAttempts)
	})

	t.Run("lockout expires after lockout period", func(t *testing.T) {
		svc, tp := newTestService(t)

		for i := 0; i < maxAttempts; i++ {
			svc.Login("sbagliata", "10.0.0.1")
		}
		_, err := svc.Login(testPassword, "10.0.0.1")
		require.ErrorIs(t, err, ErrTooManyAttempts)

		tp.now = tp.now.Add(lockoutPeriod + time.Second)

		_, err = svc.Login(testPassword, "10.0.0.1")
		assert.NoError(t, err)
	})

	t.Run("old failures fall out of the window", func(t *testing.T) {
		svc, tp := newTestService(t)

		for i := 0; i < maxAttempts-1; i++ {
			svc.Login("sbagliata", "10.0.0.1")
		}

		tp.now = tp.now.Add(attemptsWindow + time.Minute)

		svc.Login("sbagliata", "10.0.0.1")

		_, err := svc.Login(testPassword, "10.0.0.1")
		assert.NoError(t, err)
	})

	t.Run("clients are tracked independently", func(t *testing.T) {
		svc, _ := newTestService(t)

		for i := 0; i < maxAttempts; i++ {
			svc.Login("sbagliata", "10.0.0.1")
		}

		_, err := svc.Login(testPassword, "10.0.0.2")
		assert.NoError(t, err)
	})

	t.Run("successful login resets the counter", func(t *testing.T) {
		svc, _ := newTestService(t)

		for i := 0; i < maxAttempts-1; i++ {
			svc.Login("sbagliata", "10.0.0.1")
		}
		_, err := svc.Login(testPassword, "10.0.0.1")
		require.NoError(t, err)

		for i := 0; i < maxAttempts-1; i++ {
			_, err := svc.Login("sbagliata", "10.0.0.1")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		svc, _ := newTestService(t)

		assert.ErrorIs(t, svc.Validate("deadbeef"), ErrSessionNotFound)
	})

	t.Run("expired session is rejected and purged", func(t *testing.T) {
		svc, tp := newTestService(t)

		session, err := svc.Login(testPassword, "10.0.0.1")
		require.NoError(t, err)

		tp.now = tp.now.Add(24*time.Hour + time.Second)

		assert.ErrorIs(t, svc.Validate(session.Token), ErrSessionNotFound)

		svc.mu.RLock()
		_, still := svc.sessions[session.Token]
		svc.mu.RUnlock()
		assert.False(t, still)
	})
}

func TestLogout(t *testing.T) {
	t.Run("terminated session no longer validates", func(t *testing.T) {
		svc, _ := newTestService(t)

		session, err := svc.Login(testPassword, "10.0.0.1")
		require.NoError(t, err)

		svc.Logout(session.Token)

		assert.ErrorIs(t, svc.Validate(session.Token), ErrSessionNotFound)
	})

	t.Run("unknown token is a no-op", func(t *testing.T) {
		svc, _ := newTestService(t)

		svc.Logout("deadbeef")
	})
}
