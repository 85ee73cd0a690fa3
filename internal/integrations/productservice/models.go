package productservice

import (
	"encoding/json"
	"fmt"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Product модель бронируемого продукта из продуктового сервиса
type Product struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Bookable     bool                `json:"bookable"`
	Duration     int                 `json:"duration"`
	DurationUnit domain.DurationUnit `json:"duration_unit"`
	MaxDate      MaxDate             `json:"max_date"`
	HasPersons   bool                `json:"has_persons"`
	Qty          int                 `json:"qty"` // 0 = количество не отслеживается
	Resources    []Resource          `json:"resources"`
}

// MaxDate максимальная глубина бронирования продукта
type MaxDate struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"` // month / week / day
}

// ToDomain конвертирует в доменную модель
func (m MaxDate) ToDomain() domain.MaxDateSpec {
	return domain.MaxDateSpec{Value: m.Value, Unit: m.Unit}
}

// Resource ресурс продукта (инструктор, помещение и т.п.)
type Resource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HasResources returns true if the product is resource-scoped
func (p *Product) HasResources() bool {
	return len(p.Resources) > 0
}

// ErrorResponse модель ошибки от продуктового сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// wireRule правило доступности в wire-формате
// Поддерживаются две кодировки:
//   - объект: {"type": "custom", "range": {...}} или {"type": "custom:daterange", ...}
//   - позиционная пара: ["custom", {...range...}]
type wireRule struct {
	Type     string             `json:"type"`
	Range    domain.CustomRange `json:"range"`
	From     string             `json:"from"`
	To       string             `json:"to"`
	Bookable string             `json:"bookable"`
}

// UnmarshalJSON принимает обе кодировки правила
func (r *wireRule) UnmarshalJSON(data []byte) error {
	type plain wireRule
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*r = wireRule(obj)
		return nil
	}

	// Позиционная форма: первый элемент - тип, второй - карта диапазона
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("availability rule: unsupported encoding: %w", err)
	}
	if len(pair) < 2 {
		return fmt.Errorf("availability rule: positional form requires 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &r.Type); err != nil {
		return fmt.Errorf("availability rule: invalid positional type: %w", err)
	}
	if err := json.Unmarshal(pair[1], &r.Range); err != nil {
		return fmt.Errorf("availability rule: invalid positional range: %w", err)
	}
	return nil
}

// ToDomain конвертирует wire-правило в доменную модель
func (r wireRule) ToDomain() domain.AvailabilityRule {
	return domain.AvailabilityRule{
		Type:     domain.RuleType(r.Type),
		Range:    r.Range,
		From:     r.From,
		To:       r.To,
		Bookable: r.Bookable,
	}
}

// wireRuleSet набор правил в wire-формате
type wireRuleSet struct {
	Rules      []wireRule            `json:"rules"`
	ByResource map[int64][]wireRule `json:"by_resource"`
}

// ToDomain конвертирует набор правил в доменную модель
func (s wireRuleSet) ToDomain() *domain.RuleSet {
	result := &domain.RuleSet{
		Rules: toDomainRules(s.Rules),
	}
	if len(s.ByResource) > 0 {
		result.ByResource = make(map[int64][]domain.AvailabilityRule, len(s.ByResource))
		for resourceID, rules := range s.ByResource {
			result.ByResource[resourceID] = toDomainRules(rules)
		}
	}
	return result
}

func toDomainRules(rules []wireRule) []domain.AvailabilityRule {
	result := make([]domain.AvailabilityRule, len(rules))
	for i, r := range rules {
		result[i] = r.ToDomain()
	}
	return result
}

// availableBookingsResponse ответ endpoint'а подсчёта доступных бронирований
type availableBookingsResponse struct {
	Available int `json:"available"`
}
