package refresh_dates

import "github.com/alex-kodr/bookings-dropdown-service/internal/domain"

// Request модель запроса на пересчёт дат
type Request struct {
	ProductID  int64 // ID продукта (обязателен)
	ResourceID int64 // ID ресурса (0 = без привязки к ресурсу)
}

// Response модель ответа со списком дат
// Dates упорядочен: prompt-опция с пустым значением первая, далее даты по возрастанию
type Response struct {
	Dates []domain.DateOption
}
