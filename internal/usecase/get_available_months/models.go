package get_available_months

import "time"

// Request модель запроса окна месяцев
type Request struct {
	TheoryExpiry *time.Time // Дата истечения теории (опционально)
}

// Response модель ответа с окном месяцев и аннотациями.
// UrgentMonth и RecommendedMonth вычисляются независимо; правило
// приоритета (срочный месяц подавляет рекомендацию) применяет вызывающий.
type Response struct {
	Months           []string // Предлагаемые месяцы, хронологически
	UrgentMonth      *string  // Самый ранний месяц, если истечение близко
	RecommendedMonth *string  // Месяц за два месяца до истечения
}
