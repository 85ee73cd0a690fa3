package refresh_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alex-kodr/bookings-dropdown-service/internal/api/handlers"
	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	refreshDates "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/refresh_dates"
)

type Handler struct {
	useCase RefreshDatesUseCase
	nonce   Noncer
	logger  Logger
}

func NewHandler(useCase RefreshDatesUseCase, nonce Noncer, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		nonce:   nonce,
		logger:  logger,
	}
}

// Handle POST /api/v1/refresh-dates
// Form params: action, security, product_id (required), resource_id (optional, default 0)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /refresh-dates - Failed to parse form: %v", err)
		respondFailure(w)
		return
	}

	// Проверка anti-forgery токена идёт первой: при невалидном токене
	// запрос обрывается без тела, до обращения к продукту
	if !h.nonce.Verify(r.PostFormValue("security"), domain.RefreshAction) {
		h.logger.Warn("POST /refresh-dates - Invalid security token")
		w.WriteHeader(http.StatusForbidden)
		return
	}

	if action := r.PostFormValue("action"); action != domain.RefreshAction {
		h.logger.Warn("POST /refresh-dates - Unexpected action %q", action)
		respondFailure(w)
		return
	}

	productID, err := strconv.ParseInt(r.PostFormValue("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		h.logger.Warn("POST /refresh-dates - Missing or invalid product_id")
		respondFailure(w)
		return
	}

	// resource_id опционален, нечисловые и отрицательные значения трактуются как 0
	var resourceID int64
	if raw := r.PostFormValue("resource_id"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			resourceID = parsed
		}
	}

	result, err := h.useCase.Execute(r.Context(), &refreshDates.Request{
		ProductID:  productID,
		ResourceID: resourceID,
	})
	if err != nil {
		// Все нефатальные ошибки отдаются клиенту одинаково: {"success":false}
		switch {
		case errors.Is(err, refreshDates.ErrNoDatesAvailable):
			h.logger.Info("POST /refresh-dates - No dates available: product_id=%d, resource_id=%d",
				productID, resourceID)

		case errors.Is(err, refreshDates.ErrProductNotFound),
			errors.Is(err, refreshDates.ErrNotBookable),
			errors.Is(err, refreshDates.ErrUnsupportedDuration),
			errors.Is(err, refreshDates.ErrInvalidInput):
			h.logger.Warn("POST /refresh-dates - Rejected: product_id=%d, resource_id=%d, error=%v",
				productID, resourceID, err)

		default:
			h.logger.Error("POST /refresh-dates - Failed to refresh dates: product_id=%d, resource_id=%d, error=%v",
				productID, resourceID, err)
		}
		respondFailure(w)
		return
	}

	h.logger.Info("POST /refresh-dates - Dates refreshed successfully: product_id=%d, resource_id=%d, dates_count=%d",
		productID, resourceID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, &RefreshResponse{
		Success: true,
		Dates:   result.Dates,
	})
}

func respondFailure(w http.ResponseWriter) {
	handlers.RespondJSON(w, http.StatusOK, &RefreshResponse{Success: false})
}
