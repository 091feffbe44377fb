package admin_logout

import (
	"net/http"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/middleware"
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

// Handle POST /api/v1/admin/logout
// Маршрут защищён: до handler доходят только валидные токены.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	h.service.Logout(token)

	h.logger.Info("POST /admin/logout - Admin logged out")
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
