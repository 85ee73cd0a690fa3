// Package pickers стратегии построения поля выбора даты по гранулярности
// бронирования продукта. Выбор стратегии - явный маппинг от duration unit,
// неизвестная гранулярность означает "не поддерживается".
package pickers

import (
	"context"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	"github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	BookedDayCounts(ctx context.Context, productID, resourceID int64, from, to time.Time) (map[string]int, error)
}

// Picker строит дескриптор поля выбора даты для продукта
type Picker interface {
	Field(ctx context.Context, product *productservice.Product, resourceID int64, bounds domain.Bounds) (domain.FormField, error)
}

// Registry маппинг гранулярности бронирования на стратегию picker'а
type Registry map[domain.DurationUnit]Picker

// NewRegistry создает реестр picker'ов
// month → MonthPicker, day/night → DatePicker, hour/minute → DatetimePicker
func NewRegistry(bookingRepo BookingRepository) Registry {
	datePicker := &DatePicker{bookingRepo: bookingRepo}
	datetimePicker := &DatetimePicker{bookingRepo: bookingRepo}

	return Registry{
		domain.DurationUnitMonth:  &MonthPicker{bookingRepo: bookingRepo},
		domain.DurationUnitDay:    datePicker,
		domain.DurationUnitNight:  datePicker,
		domain.DurationUnitHour:   datetimePicker,
		domain.DurationUnitMinute: datetimePicker,
	}
}

// For возвращает picker для гранулярности продукта
func (r Registry) For(unit domain.DurationUnit) (Picker, bool) {
	picker, ok := r[unit]
	return picker, ok
}

// MonthPicker поле выбора даты для помесячных бронирований
type MonthPicker struct {
	bookingRepo BookingRepository
}

func (p *MonthPicker) Field(ctx context.Context, product *productservice.Product, resourceID int64, bounds domain.Bounds) (domain.FormField, error) {
	return buildDateField(ctx, p.bookingRepo, product, resourceID, bounds, "Start month")
}

// DatePicker поле выбора даты для дневных и ночных бронирований
type DatePicker struct {
	bookingRepo BookingRepository
}

func (p *DatePicker) Field(ctx context.Context, product *productservice.Product, resourceID int64, bounds domain.Bounds) (domain.FormField, error) {
	return buildDateField(ctx, p.bookingRepo, product, resourceID, bounds, "Start date")
}

// DatetimePicker поле выбора даты для часовых и минутных бронирований
// Выбор времени внутри дня остаётся за нативной формой
type DatetimePicker struct {
	bookingRepo BookingRepository
}

func (p *DatetimePicker) Field(ctx context.Context, product *productservice.Product, resourceID int64, bounds domain.Bounds) (domain.FormField, error) {
	return buildDateField(ctx, p.bookingRepo, product, resourceID, bounds, "Start date and time")
}

// buildDateField общая сборка дескриптора date-picker поля
// с предвычисленными полностью занятыми днями
func buildDateField(
	ctx context.Context,
	bookingRepo BookingRepository,
	product *productservice.Product,
	resourceID int64,
	bounds domain.Bounds,
	label string,
) (domain.FormField, error) {
	maxDate := product.MaxDate.ToDomain()

	fullyBooked, err := fullyBookedDays(ctx, bookingRepo, product, resourceID, bounds)
	if err != nil {
		return domain.FormField{}, err
	}

	return domain.FormField{
		Type:            domain.FieldTypeDatePicker,
		Name:            domain.FieldNameStartDate,
		Label:           label,
		MaxDate:         &maxDate,
		FullyBookedDays: fullyBooked,
	}, nil
}

// fullyBookedDays предвычисляет дни, где активных бронирований не меньше qty
// Продукты без учёта количества занятых дней не имеют
func fullyBookedDays(
	ctx context.Context,
	bookingRepo BookingRepository,
	product *productservice.Product,
	resourceID int64,
	bounds domain.Bounds,
) (domain.FullyBookedSet, error) {
	if !product.HasPersons || product.Qty <= 0 {
		return nil, nil
	}

	counts, err := bookingRepo.BookedDayCounts(ctx, product.ID, resourceID, bounds.Now, bounds.MaxDate)
	if err != nil {
		return nil, err
	}

	set := make(domain.FullyBookedSet)
	for day, count := range counts {
		if count >= product.Qty {
			set[day] = true
		}
	}
	if len(set) == 0 {
		return nil, nil
	}
	return set, nil
}
