package capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	"github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
)

type fakeBookingRepo struct {
	count int
	err   error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, _, _ int64, start, end time.Time) (int, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.count, f.err
}

type fakeProductClient struct {
	available int
	err       error
}

func (f *fakeProductClient) GetAvailableBookings(context.Context, int64, int64, time.Time, time.Time) (int, error) {
	return f.available, f.err
}

type fakeFailOpenCounter struct {
	reasons []string
}

func (f *fakeFailOpenCounter) CapacityFailOpen(reason string) {
	f.reasons = append(f.reasons, reason)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testProduct() *productservice.Product {
	return &productservice.Product{
		ID:           42,
		HasPersons:   true,
		Qty:          10,
		Duration:     1,
		DurationUnit: domain.DurationUnitDay,
	}
}

func testDate() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestRemainingPlaces_NoPersonsTracking(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeProductClient{}, &fakeFailOpenCounter{}, noopLogger{})

	product := testProduct()
	product.HasPersons = false

	got := svc.RemainingPlaces(context.Background(), product, 0, testDate())
	assert.Equal(t, domain.UnlimitedCapacity, got)
}

func TestRemainingPlaces_ProductServiceAnswer(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeProductClient{available: 7}, &fakeFailOpenCounter{}, noopLogger{})

	got := svc.RemainingPlaces(context.Background(), testProduct(), 0, testDate())
	assert.Equal(t, 7, got)
}

func TestRemainingPlaces_QtyMinusOverlapping(t *testing.T) {
	repo := &fakeBookingRepo{count: 4}
	svc := NewService(repo, &fakeProductClient{available: 0}, &fakeFailOpenCounter{}, noopLogger{})

	got := svc.RemainingPlaces(context.Background(), testProduct(), 0, testDate())
	assert.Equal(t, 6, got)

	// Окно бронирования для duration=1 day: [date, date+1d)
	assert.Equal(t, testDate(), repo.gotStart)
	assert.Equal(t, testDate().AddDate(0, 0, 1), repo.gotEnd)
}

func TestRemainingPlaces_OverbookedClampsToZero(t *testing.T) {
	repo := &fakeBookingRepo{count: 25}
	svc := NewService(repo, &fakeProductClient{}, &fakeFailOpenCounter{}, noopLogger{})

	got := svc.RemainingPlaces(context.Background(), testProduct(), 0, testDate())
	assert.Equal(t, 0, got)
}

func TestRemainingPlaces_NoQtyUnlimited(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeProductClient{}, &fakeFailOpenCounter{}, noopLogger{})

	product := testProduct()
	product.Qty = 0

	got := svc.RemainingPlaces(context.Background(), product, 0, testDate())
	assert.Equal(t, domain.UnlimitedCapacity, got)
}

func TestRemainingPlaces_ProductServiceFailOpen(t *testing.T) {
	counter := &fakeFailOpenCounter{}
	client := &fakeProductClient{err: errors.New("connection refused")}
	svc := NewService(&fakeBookingRepo{}, client, counter, noopLogger{})

	got := svc.RemainingPlaces(context.Background(), testProduct(), 0, testDate())

	assert.Equal(t, domain.UnlimitedCapacity, got)
	assert.Equal(t, []string{"product_service"}, counter.reasons)
}

func TestRemainingPlaces_StorageFailOpen(t *testing.T) {
	counter := &fakeFailOpenCounter{}
	repo := &fakeBookingRepo{err: errors.New("pq: connection reset")}
	svc := NewService(repo, &fakeProductClient{}, counter, noopLogger{})

	got := svc.RemainingPlaces(context.Background(), testProduct(), 0, testDate())

	assert.Equal(t, domain.UnlimitedCapacity, got)
	assert.Equal(t, []string{"storage"}, counter.reasons)
}

func TestBookingWindowEnd(t *testing.T) {
	date := testDate()

	assert.Equal(t, date.AddDate(0, 2, 0), bookingWindowEnd(date, 2, domain.DurationUnitMonth))
	assert.Equal(t, date.Add(3*time.Hour), bookingWindowEnd(date, 3, domain.DurationUnitHour))
	assert.Equal(t, date.Add(45*time.Minute), bookingWindowEnd(date, 45, domain.DurationUnitMinute))
	assert.Equal(t, date.AddDate(0, 0, 2), bookingWindowEnd(date, 2, domain.DurationUnitNight))
	assert.Equal(t, date.AddDate(0, 0, 1), bookingWindowEnd(date, 1, domain.DurationUnitDay))
}
