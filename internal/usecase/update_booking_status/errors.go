package update_booking_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidStatus возвращается, когда целевой статус не входит
	// в допустимое перечисление
	ErrInvalidStatus = errors.New("update_booking_status: invalid target status")

	// ErrIllegalTransition возвращается, когда переход запрещён машиной
	// состояний (например, confermato -> contattato). UI такие переходы
	// не предлагает, но операция обязана их отклонять, а не игнорировать.
	ErrIllegalTransition = errors.New("update_booking_status: illegal status transition")

	// ErrEmailDeliveryFailed возвращается, когда письмо с подтверждением
	// не доставлено и администратор не запросил подтверждение без письма.
	// Статус при этом не меняется - администратор выбирает: отменить
	// переход или повторить с force=true.
	ErrEmailDeliveryFailed = errors.New("update_booking_status: confirmation email delivery failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
