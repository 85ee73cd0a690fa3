package availability

import (
	"fmt"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
)

// FormatLabel форматирует подпись даты для выпадающего списка
// Пример: "June 15th, 2025 (5 places remaining)"
// Остаток >= 999 считается неограниченным и суффикс не добавляется
func FormatLabel(date time.Time, remaining int) string {
	label := fmt.Sprintf("%s %s, %d", date.Month().String(), ordinal(date.Day()), date.Year())

	if remaining < domain.UnlimitedCapacity {
		label += fmt.Sprintf(" (%d %s remaining)", remaining, pluralPlaces(remaining))
	}

	return label
}

// ordinal возвращает день месяца с английским порядковым суффиксом (1st, 2nd, 11th, ...)
func ordinal(day int) string {
	suffix := "th"
	// 11-13 всегда th
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

func pluralPlaces(n int) string {
	if n == 1 {
		return "place"
	}
	return "places"
}
