package refresh_dates

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.ResourceID < 0 {
		return fmt.Errorf("%w: resourceID must not be negative", ErrInvalidInput)
	}

	return nil
}
