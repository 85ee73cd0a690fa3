package domain

// UnlimitedCapacity сентинел "места не отслеживаются" для продуктов без
// per-person учёта. Значения >= UnlimitedCapacity не показываются в подписи даты.
const UnlimitedCapacity = 999

// Time format constants
// DateFormat формат YYYY-MM-DD (значения опций и ответ API)
// Ключи fully_booked_days идут без ведущих нулей - см. DayKey
const DateFormat = "2006-01-02"

// Form field names and CSS classes
const (
	FieldNameStartDate = "wc_bookings_field_start_date"
	FieldNameResource  = "wc_bookings_field_resource"

	ClassPickerHidden  = "picker-hidden"
	ClassPickerChooser = "picker-chooser"
)

// RefreshAction имя действия, к которому привязан anti-forgery токен
// endpoint'а обновления дат
const RefreshAction = "wswp_refresh_dates"

// Prompt strings (пустой ключ опции, первая позиция в списке)
const (
	PromptPleaseSelect = "Please Select"
	PromptSelectDate   = "Select a course date"
)

// DurationUnit гранулярность бронирования продукта
// Определяет, какая стратегия picker'а применяется
type DurationUnit string

const (
	DurationUnitMonth  DurationUnit = "month"
	DurationUnitDay    DurationUnit = "day"
	DurationUnitNight  DurationUnit = "night"
	DurationUnitHour   DurationUnit = "hour"
	DurationUnitMinute DurationUnit = "minute"
)

// Max-lookahead units (поле max_date продукта)
const (
	MaxDateUnitMonth = "month"
	MaxDateUnitWeek  = "week"
	MaxDateUnitDay   = "day"
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятых мест
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPendingConfirmation,
	StatusConfirmed,
	StatusPaid,
	StatusComplete,
}
