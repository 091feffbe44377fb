package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	bookingRepo "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/infra/storage/booking"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/integrations/mailservice"
)

// UseCase use case смены статуса заявки администратором
type UseCase struct {
	bookingRepo  BookingRepository
	mailNotifier MailNotifier
	pushNotifier PushNotifier
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	mailNotifier MailNotifier,
	pushNotifier PushNotifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		mailNotifier: mailNotifier,
		pushNotifier: pushNotifier,
		logger:       logger,
	}
}

// Execute выполняет переход статуса.
//
// Переход в confermato двухфазный: сначала попытка доставить письмо,
// и только после неё (успех или явный force) меняется статус. Порядок
// "уведомить, затем зафиксировать" кооперативный, не транзакционный:
// прерывание между шагами оставляет заявку в прежнем статусе, а после
// повтора возможен дубль письма - это допустимо и задокументировано.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking id=%d, target=%s, force=%t",
		req.BookingID, req.TargetStatus, req.Force)

	// 1. Целевой статус должен входить в перечисление
	target := domain.BookingStatus(req.TargetStatus)
	if !target.IsValid() {
		uc.logger.Warn("UpdateBookingStatus: invalid target status=%s", req.TargetStatus)
		return nil, ErrInvalidStatus
	}

	// 2. Получаем заявку
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем переход по машине состояний
	if !booking.Status.CanTransitionTo(target) {
		uc.logger.Warn("UpdateBookingStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, target, req.BookingID)
		return nil, ErrIllegalTransition
	}

	// 4. Фаза уведомления: письмо до смены статуса
	emailSent := false
	if target == domain.StatusConfirmed && booking.HasEmail() {
		err := uc.mailNotifier.SendConfirmation(ctx, confirmationEmailFor(booking))
		switch {
		case err == nil:
			emailSent = true
		case req.Force:
			// Администратор явно выбрал "подтвердить без письма"
			uc.logger.Warn("UpdateBookingStatus: email delivery failed for booking id=%d, proceeding on force: %v",
				req.BookingID, err)
		default:
			uc.logger.Warn("UpdateBookingStatus: email delivery failed for booking id=%d, transition aborted: %v",
				req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrEmailDeliveryFailed, err)
		}
	}

	// 5. Фаза фиксации: меняем статус
	updatedAt, err := uc.bookingRepo.UpdateStatus(ctx, req.BookingID, target)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d moved %s -> %s (email_sent=%t)",
		req.BookingID, booking.Status, target, emailSent)

	// Push о подтверждении - fire-and-forget, вне двухфазной фиксации
	if target == domain.StatusConfirmed {
		confirmed := *booking
		confirmed.Status = target
		go uc.pushNotifier.NotifyConfirmed(context.Background(), &confirmed)
	}

	return &Response{
		ID:        booking.ID,
		FullName:  booking.FullName,
		Status:    string(target),
		EmailSent: emailSent,
		UpdatedAt: updatedAt,
	}, nil
}

// confirmationEmailFor собирает данные письма из заявки
func confirmationEmailFor(b *domain.Booking) mailservice.ConfirmationEmail {
	email := mailservice.ConfirmationEmail{
		To:            b.Email,
		Nome:          b.FullName,
		TipoPatente:   string(b.LicenseType),
		MesePreferito: b.PreferredMonth,
	}
	if b.PreferredPeriod != nil {
		period := string(*b.PreferredPeriod)
		email.PeriodoMese = &period
	}
	return email
}
