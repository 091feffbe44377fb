package create_booking

import (
	"context"
	"fmt"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/pkg/sanitizer"
)

// UseCase use case создания заявки на экзамен
type UseCase struct {
	bookingRepo  BookingRepository
	pushNotifier PushNotifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	pushNotifier PushNotifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pushNotifier: pushNotifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки.
// Ошибки валидации блокируют создание - ничего не сохраняется частично.
// Push-уведомление отправляется после успешного сохранения и не влияет
// на результат заявки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, license=%s, month=%s",
		req.Email, req.LicenseType, req.PreferredMonth)

	// 1. Валидация входных данных (fail-fast, фиксированный порядок)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что месяц входит в текущее окно
	now := uc.timeProvider.Now()
	if err := validateMonthInWindow(req.PreferredMonth, domain.AvailableMonths(now)); err != nil {
		uc.logger.Warn("CreateBooking: month=%s is outside the current window", req.PreferredMonth)
		return nil, err
	}

	// 3. Собираем доменную заявку с нормализацией ФИО
	booking := &domain.Booking{
		FullName:       sanitizer.CapitalizeWords(req.FullName),
		Email:          req.Email,
		Telefono:       normalizeOptional(req.Telefono),
		LicenseType:    domain.LicenseType(req.LicenseType),
		PreferredMonth: req.PreferredMonth,
		TheoryExpiry:   req.TheoryExpiry,
		Note:           normalizeOptional(req.Note),
		Status:         domain.StatusNew,
	}
	if req.PreferredPeriod != nil {
		period := domain.MonthPeriod(*req.PreferredPeriod)
		booking.PreferredPeriod = &period
	}

	// 4. Сохраняем (id и created_at назначает хранилище)
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	// 5. Уведомляем администратора. Отдельная горутина с собственным
	// контекстом: ответ заявителю не ждёт доставки и не зависит от неё.
	go uc.pushNotifier.NotifyNewBooking(context.Background(), created)

	return fromDomain(created), nil
}

// normalizeOptional приводит опциональную строку к nil, если после
// нормализации пробелов она пуста
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	normalized := sanitizer.TrimAndNormalize(*s)
	if normalized == "" {
		return nil
	}
	return &normalized
}
