package get_available_months

import (
	"context"

	getAvailableMonths "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/get_available_months"
)

type GetAvailableMonthsUseCase interface {
	Execute(ctx context.Context, req *getAvailableMonths.Request) (*getAvailableMonths.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
