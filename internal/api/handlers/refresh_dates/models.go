package refresh_dates

import (
	"bytes"
	"encoding/json"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
)

// failureBody тело отказа, единое для всех нефатальных ошибок
var failureBody = []byte(`{"success":false}`)

// RefreshResponse ответ endpoint'а обновления дат
//
// Сериализуется вручную: клиент полагается на порядок ключей в dates
// (prompt с пустым ключом первый, далее даты по возрастанию), а map
// в encoding/json порядок не сохраняет.
type RefreshResponse struct {
	Success bool
	Dates   []domain.DateOption
}

// MarshalJSON сериализует ответ с сохранением порядка дат
func (r *RefreshResponse) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return failureBody, nil
	}

	var buf bytes.Buffer
	buf.WriteString(`{"success":true,"dates":{`)
	for i, opt := range r.Dates {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(opt.Value)
		if err != nil {
			return nil, err
		}
		label, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}
