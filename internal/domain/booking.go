package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingConfirmation BookingStatus = "pending_confirmation"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusPaid                BookingStatus = "paid"
	StatusComplete            BookingStatus = "complete"
	StatusCancelled           BookingStatus = "cancelled"
)

// Booking represents an existing booking occupying capacity of a product/resource
type Booking struct {
	ID         int64
	ProductID  int64
	ResourceID int64 // 0 = бронирование без привязки к ресурсу
	Persons    int
	StartTime  time.Time
	EndTime    time.Time
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Overlaps returns true if the booking overlaps the [start, end) window
// Граничащие интервалы (конец одного == начало другого) пересечением не считаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// BookingsFilter фильтр для выборки бронирований продукта
type BookingsFilter struct {
	ProductID       int64      // Обязательный параметр
	ResourceID      *int64     // Фильтр по ресурсу (опционально, если nil - все ресурсы)
	StartTime       *time.Time // Начало окна (опционально)
	EndTime         *time.Time // Конец окна (опционально)
	IncludeInactive bool       // Включать ли отменённые бронирования
}
