package domain

import (
	"fmt"
	"time"
)

// MaxDateSpec максимальная глубина бронирования продукта (величина + единица)
type MaxDateSpec struct {
	Value int
	Unit  string // month / week / day
}

// Bounds границы окна выбора дат, вычисляются на каждый запрос
// Возвращаемые даты строго внутри (Now, MaxDate)
type Bounds struct {
	Now     time.Time // сегодня в полночь
	MaxDate time.Time // Now + max-lookahead продукта
}

// NewBounds builds the date window from the current time and the product's max-lookahead
func NewBounds(now time.Time, max MaxDateSpec) Bounds {
	midnight := Midnight(now)

	var maxDate time.Time
	switch max.Unit {
	case MaxDateUnitMonth:
		maxDate = midnight.AddDate(0, max.Value, 0)
	case MaxDateUnitWeek:
		maxDate = midnight.AddDate(0, 0, max.Value*7)
	default:
		// day и всё нераспознанное трактуем как дни
		maxDate = midnight.AddDate(0, 0, max.Value)
	}

	return Bounds{Now: midnight, MaxDate: maxDate}
}

// Contains returns true if the date is strictly inside (Now, MaxDate)
func (b Bounds) Contains(date time.Time) bool {
	return date.After(b.Now) && date.Before(b.MaxDate)
}

// Midnight обнуляет время, оставляя только дату
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey возвращает ключ дня без ведущих нулей (например "2025-6-15")
// Формат совпадает с ключами fully_booked_days продуктового сервиса
func DayKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// FullyBookedSet множество дней, заранее известных как полностью занятые
// Быстрый фильтр перед обращением за остатком мест
type FullyBookedSet map[string]bool

// Contains returns true if the date is known to be fully booked
func (s FullyBookedSet) Contains(date time.Time) bool {
	if s == nil {
		return false
	}
	return s[DayKey(date)]
}

// DateOption одна дата в выпадающем списке
// Ephemeral: строится на каждый запрос, сортируется по дате по возрастанию
type DateOption struct {
	Date      time.Time // полночь дня
	Value     string    // YYYY-MM-DD, пустая строка для prompt-опции
	Label     string    // отображаемая подпись
	Remaining int       // остаток мест на момент запроса
}
