// Package availability вычисление списка доступных для бронирования дат
// из правил доступности продукта. Чистая логика без внешних зависимостей,
// кроме callback'а остатка мест.
package availability

import (
	"sort"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
)

// CapacityFunc возвращает остаток мест на указанную дату
// Ошибка трактуется как "места не отслеживаются" (fail-open, 999)
type CapacityFunc func(date time.Time) (int, error)

// Expand разворачивает правила доступности в отсортированный список дат
//
// Каждая возвращаемая дата строго внутри (bounds.Now, bounds.MaxDate),
// отсутствует в fullyBooked и имеет положительный остаток мест.
// Правила не обязаны быть дизъюнктными: при повторе даты побеждает
// последняя запись. Пустой результат возвращается как nil.
func Expand(
	rules []domain.AvailabilityRule,
	bounds domain.Bounds,
	fullyBooked domain.FullyBookedSet,
	capacityFn CapacityFunc,
) []domain.DateOption {
	loc := bounds.Now.Location()
	collected := make(map[string]domain.DateOption)

	consider := func(date time.Time) {
		if !bounds.Contains(date) {
			return
		}
		if fullyBooked.Contains(date) {
			return
		}

		remaining := domain.UnlimitedCapacity
		if capacityFn != nil {
			r, err := capacityFn(date)
			if err == nil {
				remaining = r
			}
		}
		if remaining <= 0 {
			return
		}

		collected[date.Format(domain.DateFormat)] = domain.DateOption{
			Date:      date,
			Value:     date.Format(domain.DateFormat),
			Label:     FormatLabel(date, remaining),
			Remaining: remaining,
		}
	}

	for _, rule := range rules {
		switch rule.Type {
		case domain.RuleTypeDateRange:
			if !rule.IsBookableRange() {
				continue
			}

			from, err := time.ParseInLocation(domain.DateFormat, rule.From, loc)
			if err != nil {
				continue
			}
			to, err := time.ParseInLocation(domain.DateFormat, rule.To, loc)
			if err != nil {
				continue
			}

			// Диапазон включителен с обеих сторон
			for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
				consider(cur)
			}

		case domain.RuleTypeCustom:
			for year, months := range rule.Range {
				for month, days := range months {
					for day, avail := range days {
						if !avail {
							continue
						}
						// time.Date нормализует несуществующие дни (30 февраля → 2 марта)
						consider(time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc))
					}
				}
			}
		}
	}

	if len(collected) == 0 {
		return nil
	}

	options := make([]domain.DateOption, 0, len(collected))
	for _, opt := range collected {
		options = append(options, opt)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Date.Before(options[j].Date)
	})

	return options
}

// WithPrompt добавляет prompt-опцию с пустым значением первой в списке
func WithPrompt(options []domain.DateOption, prompt string) []domain.DateOption {
	result := make([]domain.DateOption, 0, len(options)+1)
	result = append(result, domain.DateOption{
		Value:     "",
		Label:     prompt,
		Remaining: domain.UnlimitedCapacity,
	})
	return append(result, options...)
}
