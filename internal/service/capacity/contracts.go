package capacity

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountOverlapping(ctx context.Context, productID, resourceID int64, start, end time.Time) (int, error)
}

// ProductServiceClient интерфейс клиента продуктового сервиса
type ProductServiceClient interface {
	GetAvailableBookings(ctx context.Context, productID, resourceID int64, start, end time.Time) (int, error)
}

// FailOpenCounter счётчик деградаций capacity-резолвера
type FailOpenCounter interface {
	CapacityFailOpen(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
