package domain

// FieldType тип поля формы бронирования
type FieldType string

const (
	FieldTypeSelect     FieldType = "select"
	FieldTypeDatePicker FieldType = "date-picker"
)

// SelectOption опция select-поля, порядок значим
type SelectOption struct {
	Value string
	Label string
}

// FormField дескриптор одного поля формы бронирования
// Упорядоченный список таких дескрипторов описывает форму целиком
type FormField struct {
	Type    FieldType
	Name    string
	Label   string
	Class   []string
	Options []SelectOption

	// Метаданные date-picker поля
	MaxDate         *MaxDateSpec
	FullyBookedDays FullyBookedSet

	// Правила доступности, прикреплённые к полю (nil = не загружены)
	AvailabilityRules *RuleSet
}

// HasClass returns true if the field carries the given CSS class
func (f *FormField) HasClass(class string) bool {
	for _, c := range f.Class {
		if c == class {
			return true
		}
	}
	return false
}

// IsResourceSelect returns true if the field is the resource selector
func (f *FormField) IsResourceSelect() bool {
	return f.Type == FieldTypeSelect && f.Name == FieldNameResource && len(f.Options) > 0
}
