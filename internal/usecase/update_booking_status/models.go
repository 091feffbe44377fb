package update_booking_status

import "time"

// Request модель запроса на смену статуса заявки
type Request struct {
	BookingID    int64  // ID заявки
	TargetStatus string // Целевой статус: nuovo | contattato | confermato
	Force        bool   // Подтвердить даже при ошибке доставки письма
}

// Response модель ответа с обновлённой заявкой
type Response struct {
	ID        int64
	FullName  string
	Status    string
	EmailSent bool // Было ли отправлено письмо с подтверждением
	UpdatedAt time.Time
}
