package create_booking

import (
	"regexp"
	"strings"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
)

// emailPattern базовая проверка вида local@domain.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует заявку. Порядок проверок фиксирован,
// возвращается первая нарушенная.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FullName) == "" {
		return ErrMissingName
	}

	if req.Email == "" {
		return ErrMissingEmail
	}

	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}

	if req.TheoryExpiry == nil {
		return ErrMissingExpiry
	}

	if req.PreferredMonth == "" {
		return ErrMissingMonth
	}

	if !domain.LicenseType(req.LicenseType).IsValid() {
		return ErrInvalidLicenseType
	}

	if req.PreferredPeriod != nil && !domain.MonthPeriod(*req.PreferredPeriod).IsValid() {
		return ErrInvalidPeriod
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return ErrNoteTooLong
	}

	return nil
}

// validateMonthInWindow проверяет, что выбранный месяц входит в окно,
// действующее на момент подачи заявки. Задним числом окно не перепроверяется.
func validateMonthInWindow(month string, months []string) error {
	for _, m := range months {
		if m == month {
			return nil
		}
	}
	return ErrMonthNotAvailable
}
