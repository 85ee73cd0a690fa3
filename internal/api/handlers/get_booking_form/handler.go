package get_booking_form

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/alex-kodr/bookings-dropdown-service/internal/api/handlers"
	buildBookingForm "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/build_booking_form"
)

const (
	msgInvalidProductID   = "некорректный ID продукта"
	msgProductNotFound    = "продукт не найден"
	msgNotBookable        = "продукт не является бронируемым"
	msgUnsupportedProduct = "гранулярность бронирования продукта не поддерживается"
)

type Handler struct {
	useCase BuildBookingFormUseCase
	nonce   Noncer
	logger  Logger
}

func NewHandler(useCase BuildBookingFormUseCase, nonce Noncer, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		nonce:   nonce,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/booking-form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/booking-form - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &buildBookingForm.Request{ProductID: productID})
	if err != nil {
		switch {
		case errors.Is(err, buildBookingForm.ErrProductNotFound):
			h.logger.Warn("GET /products/{id}/booking-form - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, buildBookingForm.ErrNotBookable):
			h.logger.Warn("GET /products/{id}/booking-form - Product not bookable: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgNotBookable)

		case errors.Is(err, buildBookingForm.ErrUnsupportedDuration):
			h.logger.Warn("GET /products/{id}/booking-form - Unsupported duration unit: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgUnsupportedProduct)

		case errors.Is(err, buildBookingForm.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/booking-form - Invalid input: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgInvalidProductID)

		default:
			h.logger.Error("GET /products/{id}/booking-form - Failed to build form: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(productID, result, NewClientState(h.nonce))

	h.logger.Info("GET /products/{id}/booking-form - Form built successfully: product_id=%d, fields_count=%d, dropdown=%t",
		productID, len(result.Fields), result.Rewritten)
	handlers.RespondJSON(w, http.StatusOK, response)
}
