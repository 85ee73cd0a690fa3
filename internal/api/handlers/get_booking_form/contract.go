package get_booking_form

import (
	"context"

	buildBookingForm "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/build_booking_form"
)

type BuildBookingFormUseCase interface {
	Execute(ctx context.Context, req *buildBookingForm.Request) (*buildBookingForm.Response, error)
}

// Noncer создает anti-forgery токены для клиентского скрипта
type Noncer interface {
	Create(action string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
