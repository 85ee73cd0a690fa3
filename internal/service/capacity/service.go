package capacity

import (
	"context"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	"github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
)

// Service резолвер остатка мест на дату
//
// Политика fail-open: любая ошибка внешнего lookup'а трактуется как
// неограниченная вместимость (999). Деградация не скрывается молча -
// пишется warn-лог и инкрементируется счётчик capacity_failopen_total,
// но пользователь видит дату как доступную.
type Service struct {
	bookingRepo   BookingRepository
	productClient ProductServiceClient
	failOpen      FailOpenCounter
	logger        Logger
}

// NewService создает новый экземпляр capacity-резолвера
func NewService(
	bookingRepo BookingRepository,
	productClient ProductServiceClient,
	failOpen FailOpenCounter,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		productClient: productClient,
		failOpen:      failOpen,
		logger:        logger,
	}
}

// RemainingPlaces возвращает остаток мест продукта/ресурса на дату
// Никогда не возвращает ошибку - см. политику fail-open выше
func (s *Service) RemainingPlaces(ctx context.Context, product *productservice.Product, resourceID int64, date time.Time) int {
	// Продукт без per-person учёта всегда доступен
	if !product.HasPersons {
		return domain.UnlimitedCapacity
	}

	start := date
	end := bookingWindowEnd(date, product.Duration, product.DurationUnit)

	// Сначала спрашиваем продуктовый сервис - он знает про блокировки,
	// недоступные ресурсы и прочие правила, которых у нас нет
	available, err := s.productClient.GetAvailableBookings(ctx, product.ID, resourceID, start, end)
	if err != nil {
		s.logger.Warn("RemainingPlaces: product service lookup failed for product=%d, resource=%d, date=%s: %v",
			product.ID, resourceID, date.Format(domain.DateFormat), err)
		s.failOpen.CapacityFailOpen("product_service")
		return domain.UnlimitedCapacity
	}
	if available > 0 {
		return available
	}

	// Фиксированное количество мест: вычитаем пересекающиеся бронирования
	if product.Qty > 0 {
		booked, err := s.bookingRepo.CountOverlapping(ctx, product.ID, resourceID, start, end)
		if err != nil {
			s.logger.Warn("RemainingPlaces: bookings lookup failed for product=%d, resource=%d, date=%s: %v",
				product.ID, resourceID, date.Format(domain.DateFormat), err)
			s.failOpen.CapacityFailOpen("storage")
			return domain.UnlimitedCapacity
		}

		remaining := product.Qty - booked
		if remaining < 0 {
			remaining = 0
		}
		return remaining
	}

	return domain.UnlimitedCapacity
}

// bookingWindowEnd вычисляет конец окна бронирования [date, date + duration)
func bookingWindowEnd(date time.Time, duration int, unit domain.DurationUnit) time.Time {
	switch unit {
	case domain.DurationUnitMonth:
		return date.AddDate(0, duration, 0)
	case domain.DurationUnitHour:
		return date.Add(time.Duration(duration) * time.Hour)
	case domain.DurationUnitMinute:
		return date.Add(time.Duration(duration) * time.Minute)
	default:
		// day и night трактуются как календарные дни
		return date.AddDate(0, 0, duration)
	}
}
