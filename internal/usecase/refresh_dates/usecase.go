package refresh_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/availability"
	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	productClient "github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
)

// UseCase use case пересчёта доступных дат при смене ресурса
type UseCase struct {
	productClient ProductServiceClient
	capacity      CapacityResolver
	pickers       PickerRegistry
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	productServiceClient ProductServiceClient,
	capacity CapacityResolver,
	pickerRegistry PickerRegistry,
	logger Logger,
) *UseCase {
	return &UseCase{
		productClient: productServiceClient,
		capacity:      capacity,
		pickers:       pickerRegistry,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case пересчёта дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RefreshDates: product=%d, resource=%d", req.ProductID, req.ResourceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RefreshDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем продукт
	product, err := uc.productClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productClient.ErrProductNotFound) {
			uc.logger.Warn("RefreshDates: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("RefreshDates: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	if !product.Bookable {
		uc.logger.Warn("RefreshDates: product id=%d is not bookable", req.ProductID)
		return nil, ErrNotBookable
	}

	// 4. Выбираем picker-стратегию по гранулярности продукта
	picker, ok := uc.pickers.For(product.DurationUnit)
	if !ok {
		uc.logger.Warn("RefreshDates: no picker for duration unit %q (product id=%d)",
			product.DurationUnit, req.ProductID)
		return nil, ErrUnsupportedDuration
	}

	// 5. Вычисляем границы окна из max-lookahead продукта
	bounds := domain.NewBounds(now, product.MaxDate.ToDomain())

	// 6. Строим дескриптор поля (включая полностью занятые дни)
	field, err := picker.Field(ctx, product, req.ResourceID, bounds)
	if err != nil {
		uc.logger.Error("RefreshDates: failed to build picker field for product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to build picker field: %v", ErrInternal, err)
	}

	// 7. Получаем правила доступности с учётом ресурса (0 = уровень продукта)
	rules, err := uc.productClient.GetAvailabilityRules(ctx, req.ProductID, req.ResourceID)
	if err != nil {
		uc.logger.Error("RefreshDates: failed to get availability rules for product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 8. Разворачиваем правила в список дат
	capacityFn := func(date time.Time) (int, error) {
		return uc.capacity.RemainingPlaces(ctx, product, req.ResourceID, date), nil
	}

	options := availability.Expand(rules, bounds, field.FullyBookedDays, capacityFn)
	if len(options) == 0 {
		uc.logger.Info("RefreshDates: no dates available for product=%d, resource=%d",
			req.ProductID, req.ResourceID)
		return nil, ErrNoDatesAvailable
	}

	uc.logger.Info("RefreshDates: %d dates for product=%d, resource=%d",
		len(options), req.ProductID, req.ResourceID)

	return &Response{
		Dates: availability.WithPrompt(options, domain.PromptSelectDate),
	}, nil
}
