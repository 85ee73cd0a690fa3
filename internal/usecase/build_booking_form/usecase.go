package build_booking_form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/availability"
	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	productClient "github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
)

// UseCase use case построения полей формы бронирования
// с заменой нативного date-picker'а на выпадающий список дат
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

// Execute выполняет use case построения полей формы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildBookingForm: product=%d", req.ProductID)

	// 1. Валидация входных данных
	if req.ProductID <= 0 {
		uc.logger.Warn("BuildBookingForm: validation failed: productID must be positive")
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем продукт
	product, err := uc.productClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productClient.ErrProductNotFound) {
			uc.logger.Warn("BuildBookingForm: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("BuildBookingForm: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	if !product.Bookable {
		uc.logger.Warn("BuildBookingForm: product id=%d is not bookable", req.ProductID)
		return nil, ErrNotBookable
	}

	// 4. Выбираем picker-стратегию по гранулярности продукта
	picker, ok := uc.pickers.For(product.DurationUnit)
	if !ok {
		uc.logger.Warn("BuildBookingForm: no picker for duration unit %q (product id=%d)",
			product.DurationUnit, req.ProductID)
		return nil, ErrUnsupportedDuration
	}

	// 5. Вычисляем границы окна из max-lookahead продукта
	bounds := domain.NewBounds(now, product.MaxDate.ToDomain())

	// 6. Строим нативное поле выбора даты (ресурс по умолчанию = 0)
	pickerField, err := picker.Field(ctx, product, 0, bounds)
	if err != nil {
		uc.logger.Error("BuildBookingForm: failed to build picker field for product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to build picker field: %v", ErrInternal, err)
	}

	// 7. Получаем полный набор правил доступности
	ruleSet, err := uc.productClient.GetRuleSet(ctx, req.ProductID)
	if err != nil {
		uc.logger.Error("BuildBookingForm: failed to get availability rules for product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 8. Трансформируем список полей
	expand := func(resourceID int64, rules []domain.AvailabilityRule, fullyBooked domain.FullyBookedSet) []domain.DateOption {
		capacityFn := func(date time.Time) (int, error) {
			return uc.capacity.RemainingPlaces(ctx, product, resourceID, date), nil
		}
		return availability.Expand(rules, bounds, fullyBooked, capacityFn)
	}

	fields, rewritten := rewriteFields(composeBaseFields(product, pickerField), ruleSet, expand)
	if !rewritten {
		uc.logger.Info("BuildBookingForm: no dates for product=%d, falling back to native picker", req.ProductID)
	} else {
		uc.logger.Info("BuildBookingForm: date dropdown built for product=%d", req.ProductID)
	}

	return &Response{
		Fields:    fields,
		Rewritten: rewritten,
	}, nil
}
