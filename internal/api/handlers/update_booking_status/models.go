package update_booking_status

import (
	"time"

	updateBookingStatus "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Force  bool   `json:"force,omitempty"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Status    string `json:"status"`
	EmailSent bool   `json:"emailSent"`
	UpdatedAt string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:        resp.ID,
		FullName:  resp.FullName,
		Status:    resp.Status,
		EmailSent: resp.EmailSent,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
