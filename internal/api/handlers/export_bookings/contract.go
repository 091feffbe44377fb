package export_bookings

import (
	"context"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings/models"
)

type BookingsService interface {
	ExportCSV(ctx context.Context, req *models.ListBookingsRequest) ([]byte, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
