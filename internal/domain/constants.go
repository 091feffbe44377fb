package domain

import (
	"fmt"
	"time"
)

// Параметры окна выбора месяца экзамена
const (
	// MonthWindowSize количество предлагаемых месяцев, начиная со следующего
	MonthWindowSize = 6

	// RecommendedOffsetMonths за сколько месяцев до истечения теории
	// рекомендуется экзамен (запас на две попытки)
	RecommendedOffsetMonths = 2

	// UrgentThresholdMonths разница в календарных месяцах до истечения,
	// при которой заявка считается срочной
	UrgentThresholdMonths = 2
)

// Business validation constants
const (
	MaxNoteLength     = 500
	MaxFullNameLength = 120
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MesiItaliani локализованные названия месяцев, индекс 0 = Gennaio
var MesiItaliani = [12]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

// MonthLabel возвращает метку месяца в формате "Febbraio 2025"
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", MesiItaliani[t.Month()-1], t.Year())
}
