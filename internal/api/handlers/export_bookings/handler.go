package export_bookings

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers"
	bookingsService "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "parametri di filtro non validi"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/export
// Экспорт уважает те же query-фильтры, что и список заявок.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}
	if v := query.Get("month"); v != "" {
		req.Month = &v
	}
	if v := query.Get("licenseType"); v != "" {
		req.LicenseType = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	data, filename, err := h.service.ExportCSV(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings/export - Failed to export: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %s (%d bytes)", filename, len(data))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
