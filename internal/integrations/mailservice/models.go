package mailservice

// ConfirmationEmail данные письма с подтверждением записи
type ConfirmationEmail struct {
	To            string  `json:"to"`
	Nome          string  `json:"nome"`
	TipoPatente   string  `json:"tipo_patente"`
	MesePreferito string  `json:"mese_preferito"`
	PeriodoMese   *string `json:"periodo_mese,omitempty"`
}

// ErrorResponse модель ошибки от почтового сервиса
type ErrorResponse struct {
	Error string `json:"error"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
