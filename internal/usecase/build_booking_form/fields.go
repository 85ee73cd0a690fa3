package build_booking_form

import (
	"strconv"

	"github.com/alex-kodr/bookings-dropdown-service/internal/availability"
	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	"github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
)

// expandFunc разворачивает правила в список дат для выбранного ресурса
type expandFunc func(resourceID int64, rules []domain.AvailabilityRule, fullyBooked domain.FullyBookedSet) []domain.DateOption

// composeBaseFields собирает нативный список полей формы бронирования:
// селектор ресурса (если продукт с ресурсами), затем поле выбора даты
func composeBaseFields(product *productservice.Product, pickerField domain.FormField) []domain.FormField {
	fields := make([]domain.FormField, 0, 2)

	if product.HasResources() {
		options := make([]domain.SelectOption, len(product.Resources))
		for i, res := range product.Resources {
			options[i] = domain.SelectOption{
				Value: strconv.FormatInt(res.ID, 10),
				Label: res.Name,
			}
		}
		fields = append(fields, domain.FormField{
			Type:    domain.FieldTypeSelect,
			Name:    domain.FieldNameResource,
			Label:   "Type",
			Options: options,
		})
	}

	return append(fields, pickerField)
}

// rewriteFields однопроходная трансформация списка полей:
// первый date-picker скрывается, сразу после него вставляется select
// с вычисленными датами. Пустой результат разворачивания отменяет
// всю трансформацию - возвращается исходный список (откат к нативному picker'у).
//
// Список, уже содержащий вставленный select, возвращается без изменений
// (повторный вызов в рамках одного рендера - no-op).
func rewriteFields(fields []domain.FormField, ruleSet *domain.RuleSet, expand expandFunc) ([]domain.FormField, bool) {
	for i := range fields {
		f := &fields[i]
		if f.Type == domain.FieldTypeSelect && f.Name == domain.FieldNameStartDate && f.HasClass(domain.ClassPickerChooser) {
			return fields, false
		}
	}

	var selectedResource int64
	rewritten := false
	result := make([]domain.FormField, 0, len(fields)+1)

	for _, field := range fields {
		// Прикрепляем правила доступности к select-полям, где их ещё нет
		if field.Type == domain.FieldTypeSelect && field.AvailabilityRules == nil {
			field.AvailabilityRules = ruleSet
		}

		// Первая опция селектора ресурса задаёт выбранный по умолчанию ресурс
		if field.IsResourceSelect() && selectedResource == 0 {
			if id, err := strconv.ParseInt(field.Options[0].Value, 10, 64); err == nil {
				selectedResource = id
			}
		}

		if field.Type == domain.FieldTypeDatePicker && !rewritten {
			if field.AvailabilityRules == nil {
				field.AvailabilityRules = ruleSet
			}

			rules := field.AvailabilityRules.ScopedTo(selectedResource)
			options := expand(selectedResource, rules, field.FullyBookedDays)
			if len(options) == 0 {
				// Откат: форма остаётся с нативным picker'ом
				return fields, false
			}

			hidden := field
			hidden.Class = []string{domain.ClassPickerHidden}
			result = append(result, hidden)

			dropdown := field
			dropdown.Type = domain.FieldTypeSelect
			dropdown.Name = domain.FieldNameStartDate
			dropdown.Class = []string{domain.ClassPickerChooser}
			dropdown.Options = toSelectOptions(availability.WithPrompt(options, domain.PromptPleaseSelect))
			result = append(result, dropdown)

			rewritten = true
			continue
		}

		result = append(result, field)
	}

	if !rewritten {
		return fields, false
	}
	return result, true
}

func toSelectOptions(options []domain.DateOption) []domain.SelectOption {
	result := make([]domain.SelectOption, len(options))
	for i, opt := range options {
		result[i] = domain.SelectOption{Value: opt.Value, Label: opt.Label}
	}
	return result
}
