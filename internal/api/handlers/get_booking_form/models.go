package get_booking_form

import (
	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	buildBookingForm "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/build_booking_form"
)

// BookingFormResponse HTTP response model
type BookingFormResponse struct {
	ProductID int64       `json:"productId"`
	Dropdown  bool        `json:"dropdown"` // false = нативный picker, даты не построены
	Fields    []FormField `json:"fields"`
	Client    ClientState `json:"client"`
}

// FormField модель поля формы бронирования
type FormField struct {
	Type    string         `json:"type"`
	Name    string         `json:"name"`
	Label   string         `json:"label"`
	Class   []string       `json:"class,omitempty"`
	Options []SelectOption `json:"options,omitempty"`
}

// SelectOption опция select-поля, порядок элементов значим
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ClientState состояние, передаваемое клиентскому скрипту при рендере
type ClientState struct {
	RefreshURL string `json:"refreshUrl"`
	Action     string `json:"action"`
	Security   string `json:"security"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(productID int64, resp *buildBookingForm.Response, client ClientState) *BookingFormResponse {
	fields := make([]FormField, len(resp.Fields))
	for i, f := range resp.Fields {
		field := FormField{
			Type:  string(f.Type),
			Name:  f.Name,
			Label: f.Label,
			Class: f.Class,
		}
		if len(f.Options) > 0 {
			field.Options = make([]SelectOption, len(f.Options))
			for j, opt := range f.Options {
				field.Options[j] = SelectOption{Value: opt.Value, Label: opt.Label}
			}
		}
		fields[i] = field
	}

	return &BookingFormResponse{
		ProductID: productID,
		Dropdown:  resp.Rewritten,
		Fields:    fields,
		Client:    client,
	}
}

// refreshPath путь endpoint'а обновления дат, передаётся клиенту при рендере
const refreshPath = "/api/v1/refresh-dates"

// NewClientState собирает состояние клиентского скрипта со свежим токеном
func NewClientState(nonce Noncer) ClientState {
	return ClientState{
		RefreshURL: refreshPath,
		Action:     domain.RefreshAction,
		Security:   nonce.Create(domain.RefreshAction),
	}
}
