package domain

import "time"

// Окно выбора месяца экзамена. Чистые функции от (сегодня, дата истечения):
// без состояния, детерминированные, пригодные для повторного вызова.

// AvailableMonths возвращает метки ближайших MonthWindowSize календарных
// месяцев, начиная с месяца, следующего за today. Порядок хронологический,
// индекс 0 - самый ранний предлагаемый месяц.
func AvailableMonths(today time.Time) []string {
	months := make([]string, 0, MonthWindowSize)
	for i := 1; i <= MonthWindowSize; i++ {
		// time.Date нормализует месяцы за границей года (13 -> Gennaio следующего)
		m := time.Date(today.Year(), today.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		months = append(months, MonthLabel(m))
	}
	return months
}

// RecommendedMonth возвращает метку месяца за RecommendedOffsetMonths
// календарных месяцев до истечения теории. Расчёт идёт от первого числа
// месяца истечения, поэтому день месяца на метку не влияет.
// Метка может не входить в AvailableMonths - пересечение делает вызывающий.
func RecommendedMonth(expiry *time.Time) *string {
	if expiry == nil {
		return nil
	}

	m := time.Date(expiry.Year(), expiry.Month()-RecommendedOffsetMonths, 1, 0, 0, 0, 0, time.UTC)
	label := MonthLabel(m)
	return &label
}

// UrgentMonth возвращает самый ранний предлагаемый месяц, если до истечения
// теории осталось не больше UrgentThresholdMonths календарных месяцев.
// Разница считается только по месяцам, день месяца игнорируется - это
// осознанно грубая эвристика, а не точный расчёт по дням.
func UrgentMonth(today time.Time, expiry *time.Time, months []string) *string {
	if expiry == nil {
		return nil
	}

	diff := (expiry.Year()-today.Year())*12 + int(expiry.Month()) - int(today.Month())
	if diff <= UrgentThresholdMonths && len(months) > 0 {
		return &months[0]
	}
	return nil
}
