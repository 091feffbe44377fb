package mailservice

import "errors"

var (
	// ErrDeliveryFailed возвращается, когда почтовый сервис отклонил отправку.
	// Текст причины (человекочитаемый) добавляется обёрткой fmt.Errorf.
	ErrDeliveryFailed = errors.New("mailservice client: delivery failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailservice client: invalid response")
)
