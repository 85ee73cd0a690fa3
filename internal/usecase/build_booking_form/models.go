package build_booking_form

import "github.com/alex-kodr/bookings-dropdown-service/internal/domain"

// Request модель запроса на построение полей формы бронирования
type Request struct {
	ProductID int64 // ID продукта (обязателен)
}

// Response модель ответа с полями формы
type Response struct {
	Fields []domain.FormField

	// Rewritten true, если нативный date-picker заменён на выпадающий список
	// false означает откат к нативному picker'у (ни одна дата не прошла фильтры)
	Rewritten bool
}
