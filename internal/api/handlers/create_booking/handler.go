package create_booking

import (
	"errors"
	"net/http"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers"
	createBooking "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidDate        = "formato data non valido, atteso YYYY-MM-DD"
	msgMissingName        = "inserisci nome e cognome"
	msgMissingEmail       = "inserisci l'email"
	msgInvalidEmail       = "inserisci un'email valida"
	msgMissingExpiry      = "inserisci la data di scadenza della teoria"
	msgMissingMonth       = "seleziona il mese preferito"
	msgMonthNotAvailable  = "il mese selezionato non è più disponibile"
	msgInvalidLicenseType = "tipo di patente non valido"
	msgInvalidPeriod      = "periodo del mese non valido"
	msgNoteTooLong        = "la nota è troppo lunga"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse theory expiry: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingName):
			h.logger.Warn("POST /bookings - Missing full name")
			handlers.RespondBadRequest(w, msgMissingName)

		case errors.Is(err, createBooking.ErrMissingEmail):
			h.logger.Warn("POST /bookings - Missing email")
			handlers.RespondBadRequest(w, msgMissingEmail)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings - Invalid email format")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrMissingExpiry):
			h.logger.Warn("POST /bookings - Missing theory expiry")
			handlers.RespondBadRequest(w, msgMissingExpiry)

		case errors.Is(err, createBooking.ErrMissingMonth):
			h.logger.Warn("POST /bookings - Missing preferred month")
			handlers.RespondBadRequest(w, msgMissingMonth)

		case errors.Is(err, createBooking.ErrMonthNotAvailable):
			h.logger.Warn("POST /bookings - Month not in current window: %s", req.PreferredMonth)
			handlers.RespondError(w, http.StatusConflict, msgMonthNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidLicenseType):
			h.logger.Warn("POST /bookings - Invalid license type: %s", req.LicenseType)
			handlers.RespondBadRequest(w, msgInvalidLicenseType)

		case errors.Is(err, createBooking.ErrInvalidPeriod):
			h.logger.Warn("POST /bookings - Invalid month period")
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, createBooking.ErrNoteTooLong):
			h.logger.Warn("POST /bookings - Note too long")
			handlers.RespondBadRequest(w, msgNoteTooLong)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, month=%s",
		result.ID, result.PreferredMonth)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
