package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers"
	updateBookingStatus "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/update_booking_status"
)

const (
	msgInvalidRequestBody  = "corpo della richiesta non valido"
	msgInvalidBookingID    = "id prenotazione non valido"
	msgBookingNotFound     = "prenotazione non trovata"
	msgInvalidStatus       = "stato non valido"
	msgIllegalTransition   = "transizione di stato non consentita"
	msgEmailDeliveryFailed = "invio dell'email di conferma non riuscito"
)

type Handler struct {
	useCase UpdateBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateBookingStatus.Request{
		BookingID:    bookingID,
		TargetStatus: req.Status,
		Force:        req.Force,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateBookingStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBookingStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status %q: booking_id=%d", req.Status, bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateBookingStatus.ErrIllegalTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Illegal transition to %q: booking_id=%d", req.Status, bookingID)
			handlers.RespondError(w, http.StatusConflict, msgIllegalTransition)

		case errors.Is(err, updateBookingStatus.ErrEmailDeliveryFailed):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Email delivery failed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusBadGateway, msgEmailDeliveryFailed)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%d, status=%s, email_sent=%t",
		result.ID, result.Status, result.EmailSent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
