package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	"github.com/alex-kodr/bookings-dropdown-service/pkg/psqlbuilder"
	"github.com/alex-kodr/bookings-dropdown-service/pkg/ptr"
)

// Repository репозиторий для чтения существующих бронирований
// Сервис только считает занятость - создание и отмена бронирований
// принадлежат другому сервису
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountOverlapping подсчитывает активные бронирования продукта,
// пересекающиеся с окном [start, end)
// resourceID > 0 ограничивает подсчёт конкретным ресурсом
//
// Граничащие интервалы пересечением не считаются: бронирование,
// заканчивающееся ровно в start (или начинающееся ровно в end), не учитывается
func (r *Repository) CountOverlapping(ctx context.Context, productID, resourceID int64, start, end time.Time) (int, error) {
	filter := domain.BookingsFilter{ProductID: productID}
	if resourceID > 0 {
		filter.ResourceID = ptr.Ptr(resourceID)
	}

	selectBuilder := applyFilter(psqlbuilder.Select("COUNT(*)").From("bookings"), filter).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// BookedDayCounts возвращает количество активных бронирований продукта
// по дням в окне [from, to], ключ - день в формате без ведущих нулей
// Используется picker'ами для предвычисления полностью занятых дней
func (r *Repository) BookedDayCounts(ctx context.Context, productID, resourceID int64, from, to time.Time) (map[string]int, error) {
	filter := domain.BookingsFilter{
		ProductID: productID,
		StartTime: ptr.Ptr(from),
		EndTime:   ptr.Ptr(to),
	}
	if resourceID > 0 {
		filter.ResourceID = ptr.Ptr(resourceID)
	}

	selectBuilder := applyFilter(psqlbuilder.Select("DATE(start_time) AS day", "COUNT(*)").From("bookings"), filter).
		GroupBy("day").
		OrderBy("day ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BookedDayCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedDayCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("%w: BookedDayCounts - scan row: %v", ErrScanRow, err)
		}
		counts[domain.DayKey(day)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedDayCounts - iterate rows: %v", ErrExecQuery, err)
	}

	return counts, nil
}

// applyFilter добавляет условия фильтра бронирований к select-запросу
// StartTime/EndTime фильтра ограничивают начало бронирования
func applyFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"product_id": filter.ProductID})

	if filter.ResourceID != nil {
		b = b.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if filter.StartTime != nil {
		b = b.Where(squirrel.GtOrEq{"start_time": *filter.StartTime})
	}
	if filter.EndTime != nil {
		b = b.Where(squirrel.LtOrEq{"start_time": *filter.EndTime})
	}
	if !filter.IncludeInactive {
		b = b.Where(squirrel.NotEq{"status": inactiveStatusStrings()})
	}

	return b
}

func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
