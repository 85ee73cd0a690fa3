package refresh_dates

import (
	"context"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	"github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
	"github.com/alex-kodr/bookings-dropdown-service/internal/pickers"
)

// ProductServiceClient интерфейс клиента продуктового сервиса
type ProductServiceClient interface {
	GetProduct(ctx context.Context, productID int64) (*productservice.Product, error)
	GetAvailabilityRules(ctx context.Context, productID, resourceID int64) ([]domain.AvailabilityRule, error)
}

// CapacityResolver интерфейс резолвера остатка мест
type CapacityResolver interface {
	RemainingPlaces(ctx context.Context, product *productservice.Product, resourceID int64, date time.Time) int
}

// PickerRegistry интерфейс реестра picker-стратегий
type PickerRegistry interface {
	For(unit domain.DurationUnit) (pickers.Picker, bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
