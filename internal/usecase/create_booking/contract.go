package create_booking

import (
	"context"
	"time"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// PushNotifier интерфейс уведомления администратора о новой заявке.
// Результат не возвращается: доставка fire-and-forget, ошибки логирует клиент.
type PushNotifier interface {
	NotifyNewBooking(ctx context.Context, booking *domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
