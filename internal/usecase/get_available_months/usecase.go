package get_available_months

import (
	"context"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
)

// UseCase use case окна выбора месяца экзамена
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute вычисляет окно предлагаемых месяцев и аннотации
// срочности/рекомендации. Чистая функция от (сегодня, дата истечения).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	months := domain.AvailableMonths(now)
	urgent := domain.UrgentMonth(now, req.TheoryExpiry, months)
	recommended := domain.RecommendedMonth(req.TheoryExpiry)

	if urgent != nil {
		uc.logger.Info("GetAvailableMonths: urgent month=%s, expiry=%s",
			*urgent, req.TheoryExpiry.Format(domain.DateFormat))
	}

	return &Response{
		Months:           months,
		UrgentMonth:      urgent,
		RecommendedMonth: recommended,
	}, nil
}
