package create_booking

import (
	"time"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	createBooking "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FullName        string  `json:"fullName"`
	Email           string  `json:"email"`
	Telefono        *string `json:"telefono,omitempty"`
	LicenseType     string  `json:"licenseType"`
	PreferredMonth  string  `json:"preferredMonth"`
	PreferredPeriod *string `json:"preferredPeriod,omitempty"`
	TheoryExpiry    string  `json:"theoryExpiry"` // "2025-04-10"
	Note            *string `json:"note,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	FullName        string  `json:"fullName"`
	Email           string  `json:"email"`
	Telefono        *string `json:"telefono,omitempty"`
	LicenseType     string  `json:"licenseType"`
	PreferredMonth  string  `json:"preferredMonth"`
	PreferredPeriod *string `json:"preferredPeriod,omitempty"`
	TheoryExpiry    string  `json:"theoryExpiry"`
	Note            *string `json:"note,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустая дата пропускается как nil: проверка обязательности выполняется
// в use case, чтобы порядок ошибок валидации не зависел от парсинга.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		FullName:        r.FullName,
		Email:           r.Email,
		Telefono:        r.Telefono,
		LicenseType:     r.LicenseType,
		PreferredMonth:  r.PreferredMonth,
		PreferredPeriod: r.PreferredPeriod,
		Note:            r.Note,
	}

	if r.TheoryExpiry != "" {
		expiry, err := time.Parse(domain.DateFormat, r.TheoryExpiry)
		if err != nil {
			return nil, err
		}
		req.TheoryExpiry = &expiry
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID,
		FullName:        resp.FullName,
		Email:           resp.Email,
		Telefono:        resp.Telefono,
		LicenseType:     resp.LicenseType,
		PreferredMonth:  resp.PreferredMonth,
		PreferredPeriod: resp.PreferredPeriod,
		Note:            resp.Note,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.TheoryExpiry != nil {
		out.TheoryExpiry = resp.TheoryExpiry.Format(domain.DateFormat)
	}
	return out
}
