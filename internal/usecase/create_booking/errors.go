package create_booking

import "errors"

// Ошибки валидации заявки. Проверки выполняются строго по порядку,
// возвращается первая нарушенная - каждой соответствует своё
// пользовательское сообщение на уровне handler.
var (
	// ErrMissingName возвращается, когда не указаны имя и фамилия
	ErrMissingName = errors.New("create_booking: full name is required")

	// ErrMissingEmail возвращается, когда не указан email
	ErrMissingEmail = errors.New("create_booking: email is required")

	// ErrInvalidEmail возвращается при некорректном формате email
	ErrInvalidEmail = errors.New("create_booking: invalid email format")

	// ErrMissingExpiry возвращается, когда не указана дата истечения теории
	ErrMissingExpiry = errors.New("create_booking: theory expiry date is required")

	// ErrMissingMonth возвращается, когда не выбран месяц экзамена
	ErrMissingMonth = errors.New("create_booking: preferred month is required")

	// ErrMonthNotAvailable возвращается, когда выбранный месяц не входит
	// в текущее окно предлагаемых месяцев
	ErrMonthNotAvailable = errors.New("create_booking: preferred month is not in the current window")

	// ErrInvalidLicenseType возвращается при неизвестной категории прав
	ErrInvalidLicenseType = errors.New("create_booking: invalid license type")

	// ErrInvalidPeriod возвращается при неизвестном периоде месяца
	ErrInvalidPeriod = errors.New("create_booking: invalid month period")

	// ErrNoteTooLong возвращается, когда заметка превышает допустимую длину
	ErrNoteTooLong = errors.New("create_booking: note is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
