package domain

// RuleType тип правила доступности
type RuleType string

const (
	// RuleTypeCustom вложенная карта год → месяц → день → доступность
	RuleTypeCustom RuleType = "custom"

	// RuleTypeDateRange явный диапазон дат с флагом bookable
	RuleTypeDateRange RuleType = "custom:daterange"
)

// CustomRange nested availability map: year → month → day → bookable
type CustomRange map[int]map[int]map[int]bool

// AvailabilityRule одно правило доступности продукта или ресурса
// Иммутабельный вход, принадлежит продуктовому сервису
type AvailabilityRule struct {
	Type  RuleType
	Range CustomRange // заполнен для RuleTypeCustom

	// Поля RuleTypeDateRange
	From     string // YYYY-MM-DD, включительно
	To       string // YYYY-MM-DD, включительно
	Bookable string // "yes" / "no"
}

// IsBookableRange returns true if the rule is a bookable date range
func (r *AvailabilityRule) IsBookableRange() bool {
	return r.Type == RuleTypeDateRange && r.Bookable == "yes"
}

// RuleSet набор правил доступности продукта, опционально с подмножествами по ресурсам
type RuleSet struct {
	Rules      []AvailabilityRule            // правила уровня продукта
	ByResource map[int64][]AvailabilityRule // подмножества для конкретных ресурсов
}

// ScopedTo возвращает правила для указанного ресурса
// Если resourceID < 1 или подмножества для него нет - возвращается весь набор
func (s *RuleSet) ScopedTo(resourceID int64) []AvailabilityRule {
	if resourceID < 1 {
		return s.Rules
	}
	scoped, ok := s.ByResource[resourceID]
	if !ok {
		return s.Rules
	}
	return scoped
}
