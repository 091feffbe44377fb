package create_booking

import (
	"time"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
)

// Request модель запроса на создание заявки
type Request struct {
	FullName        string     // Имя и фамилия (обязательно)
	Email           string     // Email (обязательно)
	Telefono        *string    // Телефон (опционально)
	LicenseType     string     // Категория прав: AM | A1 | B
	PreferredMonth  string     // Выбранный месяц, например "Febbraio 2025"
	PreferredPeriod *string    // Период месяца (опционально)
	TheoryExpiry    *time.Time // Дата истечения теории
	Note            *string    // Заметка (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID              int64
	FullName        string
	Email           string
	Telefono        *string
	LicenseType     string
	PreferredMonth  string
	PreferredPeriod *string
	TheoryExpiry    *time.Time
	Note            *string
	Status          string
	CreatedAt       time.Time
}

// fromDomain конвертирует доменную заявку в response
func fromDomain(b *domain.Booking) *Response {
	resp := &Response{
		ID:             b.ID,
		FullName:       b.FullName,
		Email:          b.Email,
		Telefono:       b.Telefono,
		LicenseType:    string(b.LicenseType),
		PreferredMonth: b.PreferredMonth,
		TheoryExpiry:   b.TheoryExpiry,
		Note:           b.Note,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
	}
	if b.PreferredPeriod != nil {
		period := string(*b.PreferredPeriod)
		resp.PreferredPeriod = &period
	}
	return resp
}
