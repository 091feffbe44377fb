package models

import (
	"errors"
	"time"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе в фильтре
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidLicenseType возвращается при некорректной категории в фильтре
	ErrInvalidLicenseType = errors.New("invalid license type")
)

// ListBookingsRequest запрос админской выборки заявок
type ListBookingsRequest struct {
	Month       *string `json:"month,omitempty"`
	LicenseType *string `json:"licenseType,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует запрос в доменный фильтр с валидацией перечислений
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{Month: r.Month}

	if r.LicenseType != nil {
		lt := domain.LicenseType(*r.LicenseType)
		if !lt.IsValid() {
			return domain.BookingsFilter{}, ErrInvalidLicenseType
		}
		filter.LicenseType = &lt
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !status.IsValid() {
			return domain.BookingsFilter{}, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// BookingResponse заявка в ответе сервиса
type BookingResponse struct {
	ID              int64   `json:"id"`
	FullName        string  `json:"fullName"`
	Email           string  `json:"email"`
	Telefono        *string `json:"telefono,omitempty"`
	LicenseType     string  `json:"licenseType"`
	PreferredMonth  string  `json:"preferredMonth"`
	PreferredPeriod *string `json:"preferredPeriod,omitempty"`
	TheoryExpiry    *string `json:"theoryExpiry,omitempty"`
	Note            *string `json:"note,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// StatsResponse счётчики админской панели
type StatsResponse struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	New       int `json:"new"`
	Confirmed int `json:"confirmed"`
}

// BookingListResponse список заявок со счётчиками
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Stats    StatsResponse      `json:"stats"`
}

// FromDomainBooking конвертирует доменную заявку в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:             b.ID,
		FullName:       b.FullName,
		Email:          b.Email,
		Telefono:       b.Telefono,
		LicenseType:    string(b.LicenseType),
		PreferredMonth: b.PreferredMonth,
		Note:           b.Note,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	if b.PreferredPeriod != nil {
		period := string(*b.PreferredPeriod)
		resp.PreferredPeriod = &period
	}
	if b.TheoryExpiry != nil {
		expiry := b.TheoryExpiry.Format(domain.DateFormat)
		resp.TheoryExpiry = &expiry
	}
	return resp
}

// FromDomainBookingList конвертирует слайс доменных заявок
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
