package get_available_months

import (
	"net/http"
	"time"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	getAvailableMonths "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/get_available_months"
)

const (
	msgInvalidExpiry = "formato data non valido, atteso YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableMonthsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableMonthsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/months
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := &getAvailableMonths.Request{}

	// Дата истечения теории опциональна: без неё окно отдается без подсказок
	if raw := r.URL.Query().Get("theoryExpiry"); raw != "" {
		expiry, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /months - Invalid theoryExpiry %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidExpiry)
			return
		}
		useCaseReq.TheoryExpiry = &expiry
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /months - Failed to compute month window: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
