package admin_login

import (
	"errors"
	"net"
	"net/http"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers"
	authService "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidCredentials = "password non corretta"
	msgTooManyAttempts    = "troppi tentativi di accesso, riprova più tardi"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientKey := clientIP(r)

	session, err := h.service.Login(req.Password, clientKey)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrTooManyAttempts):
			h.logger.Warn("POST /admin/login - Too many attempts from %s", clientKey)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyAttempts)

		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials from %s", clientKey)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Login failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in from %s", clientKey)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// clientIP возвращает адрес клиента без порта для ключа rate limiting
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
