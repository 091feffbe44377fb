package get_available_months

import (
	getAvailableMonths "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/get_available_months"
)

// MonthsResponse HTTP response model
type MonthsResponse struct {
	Months           []string `json:"months"`
	UrgentMonth      *string  `json:"urgentMonth,omitempty"`
	RecommendedMonth *string  `json:"recommendedMonth,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Срочный месяц подавляет рекомендацию: обе подсказки сразу клиенту
// не отдаются.
func FromUseCaseResponse(resp *getAvailableMonths.Response) *MonthsResponse {
	out := &MonthsResponse{
		Months:      resp.Months,
		UrgentMonth: resp.UrgentMonth,
	}
	if resp.UrgentMonth == nil {
		out.RecommendedMonth = resp.RecommendedMonth
	}
	return out
}
