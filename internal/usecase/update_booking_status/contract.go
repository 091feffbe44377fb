package update_booking_status

import (
	"context"
	"time"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/integrations/mailservice"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (time.Time, error)
}

// MailNotifier интерфейс отправки письма с подтверждением
type MailNotifier interface {
	SendConfirmation(ctx context.Context, email mailservice.ConfirmationEmail) error
}

// PushNotifier интерфейс push-уведомления о подтверждённой заявке
type PushNotifier interface {
	NotifyConfirmed(ctx context.Context, booking *domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
