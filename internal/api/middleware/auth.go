package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers"
)

const (
	msgMissingToken = "token di autenticazione mancante"
	msgInvalidToken = "sessione non valida o scaduta"
)

// SessionValidator проверяет токен админской сессии
type SessionValidator interface {
	Validate(token string) error
}

// BearerToken извлекает токен из заголовка Authorization.
// Возвращает пустую строку, если заголовок отсутствует или не Bearer.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// Auth возвращает middleware, пропускающее только запросы с валидным
// токеном сессии в заголовке Authorization
func Auth(validator SessionValidator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if err := validator.Validate(token); err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
