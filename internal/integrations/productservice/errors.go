package productservice

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("productservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("productservice client: invalid response")
)
