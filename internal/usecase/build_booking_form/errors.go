package build_booking_form

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrNotBookable возвращается, когда продукт не является бронируемым
	ErrNotBookable = errors.New("product is not bookable")

	// ErrUnsupportedDuration возвращается, когда для гранулярности продукта
	// не зарегистрирована picker-стратегия
	ErrUnsupportedDuration = errors.New("unsupported duration unit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
