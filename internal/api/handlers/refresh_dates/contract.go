package refresh_dates

import (
	"context"

	refreshDates "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/refresh_dates"
)

type RefreshDatesUseCase interface {
	Execute(ctx context.Context, req *refreshDates.Request) (*refreshDates.Response, error)
}

// Noncer проверяет anti-forgery токены
type Noncer interface {
	Verify(token, action string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
