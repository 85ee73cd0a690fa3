package refresh_dates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
	refreshDates "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/refresh_dates"
)

type fakeUseCase struct {
	response *refreshDates.Response
	err      error

	gotRequest *refreshDates.Request
	calls      int
}

func (f *fakeUseCase) Execute(_ context.Context, req *refreshDates.Request) (*refreshDates.Response, error) {
	f.calls++
	f.gotRequest = req
	return f.response, f.err
}

type fakeNoncer struct {
	valid bool
}

func (f *fakeNoncer) Verify(string, string) bool {
	return f.valid
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func postForm(handler *Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/refresh-dates", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"action":      {domain.RefreshAction},
		"security":    {"aabbccddeeff0011"},
		"product_id":  {"42"},
		"resource_id": {"7"},
	}
}

func dateOption(day int, label string) domain.DateOption {
	d := time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
	return domain.DateOption{
		Date:      d,
		Value:     d.Format(domain.DateFormat),
		Label:     label,
		Remaining: 5,
	}
}

func TestHandle_Success(t *testing.T) {
	useCase := &fakeUseCase{response: &refreshDates.Response{
		Dates: []domain.DateOption{
			{Value: "", Label: domain.PromptSelectDate, Remaining: domain.UnlimitedCapacity},
			dateOption(15, "June 15th, 2025 (5 places remaining)"),
			dateOption(17, "June 17th, 2025 (5 places remaining)"),
		},
	}}
	handler := NewHandler(useCase, &fakeNoncer{valid: true}, noopLogger{})

	rec := postForm(handler, validForm())

	assert.Equal(t, http.StatusOK, rec.Code)

	// Порядок ключей в dates значим, сравниваем сырое тело
	expected := `{"success":true,"dates":{` +
		`"":"Select a course date",` +
		`"2025-06-15":"June 15th, 2025 (5 places remaining)",` +
		`"2025-06-17":"June 17th, 2025 (5 places remaining)"}}`
	assert.Equal(t, expected, strings.TrimSpace(rec.Body.String()))

	require.NotNil(t, useCase.gotRequest)
	assert.Equal(t, int64(42), useCase.gotRequest.ProductID)
	assert.Equal(t, int64(7), useCase.gotRequest.ResourceID)
}

func TestHandle_InvalidNonce(t *testing.T) {
	useCase := &fakeUseCase{}
	handler := NewHandler(useCase, &fakeNoncer{valid: false}, noopLogger{})

	rec := postForm(handler, validForm())

	// Невалидный токен обрывает запрос без тела, usecase не вызывается
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 0, useCase.calls)
}

func TestHandle_WrongAction(t *testing.T) {
	useCase := &fakeUseCase{}
	handler := NewHandler(useCase, &fakeNoncer{valid: true}, noopLogger{})

	form := validForm()
	form.Set("action", "some_other_action")
	rec := postForm(handler, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
	assert.Equal(t, 0, useCase.calls)
}

func TestHandle_MissingProductID(t *testing.T) {
	useCase := &fakeUseCase{}
	handler := NewHandler(useCase, &fakeNoncer{valid: true}, noopLogger{})

	form := validForm()
	form.Del("product_id")
	rec := postForm(handler, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
	assert.Equal(t, 0, useCase.calls)
}

func TestHandle_InvalidResourceIDDefaultsToZero(t *testing.T) {
	useCase := &fakeUseCase{response: &refreshDates.Response{
		Dates: []domain.DateOption{dateOption(15, "June 15th, 2025")},
	}}
	handler := NewHandler(useCase, &fakeNoncer{valid: true}, noopLogger{})

	form := validForm()
	form.Set("resource_id", "not-a-number")
	rec := postForm(handler, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, useCase.gotRequest)
	assert.Equal(t, int64(0), useCase.gotRequest.ResourceID)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"no dates", refreshDates.ErrNoDatesAvailable},
		{"product not found", refreshDates.ErrProductNotFound},
		{"not bookable", refreshDates.ErrNotBookable},
		{"unsupported duration", refreshDates.ErrUnsupportedDuration},
		{"internal", refreshDates.ErrInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tc.err}, &fakeNoncer{valid: true}, noopLogger{})

			rec := postForm(handler, validForm())

			// Любая ошибка usecase отдаётся клиенту одинаково
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"success":false}`, rec.Body.String())
		})
	}
}
