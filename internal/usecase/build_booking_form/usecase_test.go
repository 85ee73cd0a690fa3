package build_booking_form

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	"github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
	"github.com/alex-kodr/bookings-dropdown-service/internal/pickers"
)

type fakeProductClient struct {
	product *productservice.Product
	ruleSet *domain.RuleSet

	productErr error
	ruleSetErr error
}

func (f *fakeProductClient) GetProduct(context.Context, int64) (*productservice.Product, error) {
	return f.product, f.productErr
}

func (f *fakeProductClient) GetRuleSet(context.Context, int64) (*domain.RuleSet, error) {
	return f.ruleSet, f.ruleSetErr
}

type fakeCapacity struct {
	remaining int

	gotResources []int64
}

func (f *fakeCapacity) RemainingPlaces(_ context.Context, _ *productservice.Product, resourceID int64, _ time.Time) int {
	f.gotResources = append(f.gotResources, resourceID)
	return f.remaining
}

type fakePicker struct {
	field domain.FormField
}

func (f *fakePicker) Field(context.Context, *productservice.Product, int64, domain.Bounds) (domain.FormField, error) {
	return f.field, nil
}

type fakeRegistry struct {
	picker pickers.Picker
}

func (f *fakeRegistry) For(domain.DurationUnit) (pickers.Picker, bool) {
	if f.picker == nil {
		return nil, false
	}
	return f.picker, true
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func courseProduct() *productservice.Product {
	return &productservice.Product{
		ID:           42,
		Title:        "Go Course",
		Bookable:     true,
		Duration:     1,
		DurationUnit: domain.DurationUnitDay,
		MaxDate:      productservice.MaxDate{Value: 12, Unit: domain.MaxDateUnitMonth},
		HasPersons:   true,
		Qty:          5,
		Resources: []productservice.Resource{
			{ID: 7, Name: "Morning Group"},
			{ID: 8, Name: "Evening Group"},
		},
	}
}

func nativeDateField() domain.FormField {
	return domain.FormField{
		Type:  domain.FieldTypeDatePicker,
		Name:  domain.FieldNameStartDate,
		Label: "Start date",
	}
}

func ruleSetWithResources() *domain.RuleSet {
	return &domain.RuleSet{
		Rules: []domain.AvailabilityRule{
			{Type: domain.RuleTypeCustom, Range: domain.CustomRange{2025: {6: {10: true}}}},
		},
		ByResource: map[int64][]domain.AvailabilityRule{
			7: {{Type: domain.RuleTypeCustom, Range: domain.CustomRange{2025: {6: {15: true, 17: true}}}}},
			8: {{Type: domain.RuleTypeCustom, Range: domain.CustomRange{2025: {6: {20: true}}}}},
		},
	}
}

func newTestUseCase(client *fakeProductClient, capacity *fakeCapacity, registry PickerRegistry) *UseCase {
	uc := NewUseCase(client, capacity, registry, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)}
	return uc
}

func TestExecute_RewritesDateField(t *testing.T) {
	client := &fakeProductClient{product: courseProduct(), ruleSet: ruleSetWithResources()}
	capacity := &fakeCapacity{remaining: 5}
	registry := &fakeRegistry{picker: &fakePicker{field: nativeDateField()}}
	uc := newTestUseCase(client, capacity, registry)

	resp, err := uc.Execute(context.Background(), &Request{ProductID: 42})

	require.NoError(t, err)
	assert.True(t, resp.Rewritten)

	// Селектор ресурса, скрытый нативный picker, вставленный select с датами
	require.Len(t, resp.Fields, 3)

	resource := resp.Fields[0]
	assert.Equal(t, domain.FieldTypeSelect, resource.Type)
	assert.Equal(t, domain.FieldNameResource, resource.Name)
	require.Len(t, resource.Options, 2)
	assert.Equal(t, "7", resource.Options[0].Value)

	hidden := resp.Fields[1]
	assert.Equal(t, domain.FieldTypeDatePicker, hidden.Type)
	assert.True(t, hidden.HasClass(domain.ClassPickerHidden))

	dropdown := resp.Fields[2]
	assert.Equal(t, domain.FieldTypeSelect, dropdown.Type)
	assert.Equal(t, domain.FieldNameStartDate, dropdown.Name)
	assert.True(t, dropdown.HasClass(domain.ClassPickerChooser))

	// Даты первого ресурса (7): prompt + 15 и 17 июня
	require.Len(t, dropdown.Options, 3)
	assert.Equal(t, "", dropdown.Options[0].Value)
	assert.Equal(t, domain.PromptPleaseSelect, dropdown.Options[0].Label)
	assert.Equal(t, "2025-06-15", dropdown.Options[1].Value)
	assert.Equal(t, "June 15th, 2025 (5 places remaining)", dropdown.Options[1].Label)
	assert.Equal(t, "2025-06-17", dropdown.Options[2].Value)

	// Остаток мест запрашивался для выбранного по умолчанию ресурса
	for _, id := range capacity.gotResources {
		assert.Equal(t, int64(7), id)
	}
}

func TestExecute_NoResourcesUsesProductRules(t *testing.T) {
	product := courseProduct()
	product.Resources = nil
	client := &fakeProductClient{product: product, ruleSet: ruleSetWithResources()}
	registry := &fakeRegistry{picker: &fakePicker{field: nativeDateField()}}
	uc := newTestUseCase(client, &fakeCapacity{remaining: 5}, registry)

	resp, err := uc.Execute(context.Background(), &Request{ProductID: 42})

	require.NoError(t, err)
	assert.True(t, resp.Rewritten)

	// Без селектора ресурса разворачиваются правила уровня продукта
	require.Len(t, resp.Fields, 2)
	dropdown := resp.Fields[1]
	require.Len(t, dropdown.Options, 2)
	assert.Equal(t, "2025-06-10", dropdown.Options[1].Value)
}

func TestExecute_EmptyExpansionKeepsNativePicker(t *testing.T) {
	client := &fakeProductClient{product: courseProduct(), ruleSet: ruleSetWithResources()}
	registry := &fakeRegistry{picker: &fakePicker{field: nativeDateField()}}
	uc := newTestUseCase(client, &fakeCapacity{remaining: 0}, registry)

	resp, err := uc.Execute(context.Background(), &Request{ProductID: 42})

	require.NoError(t, err)
	assert.False(t, resp.Rewritten)

	// Откат: исходный список полей без скрытия и без select'а
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, domain.FieldTypeDatePicker, resp.Fields[1].Type)
	assert.False(t, resp.Fields[1].HasClass(domain.ClassPickerHidden))
}

func TestExecute_ProductNotFound(t *testing.T) {
	client := &fakeProductClient{productErr: productservice.ErrProductNotFound}
	uc := newTestUseCase(client, &fakeCapacity{}, &fakeRegistry{})

	_, err := uc.Execute(context.Background(), &Request{ProductID: 42})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestExecute_NotBookable(t *testing.T) {
	product := courseProduct()
	product.Bookable = false
	uc := newTestUseCase(&fakeProductClient{product: product}, &fakeCapacity{}, &fakeRegistry{})

	_, err := uc.Execute(context.Background(), &Request{ProductID: 42})
	assert.ErrorIs(t, err, ErrNotBookable)
}

func TestExecute_InvalidProductID(t *testing.T) {
	uc := newTestUseCase(&fakeProductClient{}, &fakeCapacity{}, &fakeRegistry{})

	_, err := uc.Execute(context.Background(), &Request{ProductID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRewriteFields_Idempotent(t *testing.T) {
	client := &fakeProductClient{product: courseProduct(), ruleSet: ruleSetWithResources()}
	registry := &fakeRegistry{picker: &fakePicker{field: nativeDateField()}}
	uc := newTestUseCase(client, &fakeCapacity{remaining: 5}, registry)

	resp, err := uc.Execute(context.Background(), &Request{ProductID: 42})
	require.NoError(t, err)
	require.True(t, resp.Rewritten)

	// Повторный проход по уже трансформированному списку ничего не меняет
	again, rewritten := rewriteFields(resp.Fields, ruleSetWithResources(), nil)
	assert.False(t, rewritten)
	assert.Equal(t, resp.Fields, again)
}
