package productservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/internal/domain"
)

// Client клиент для работы с продуктовым сервисом
// Продукты, ресурсы и правила доступности принадлежат продуктовому сервису;
// этот сервис их только читает
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента продуктового сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProduct получает продукт по ID
func (c *Client) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, fmt.Sprintf("%s/internal/products/%d", c.baseURL, productID), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetRuleSet получает полный набор правил доступности продукта,
// включая подмножества по ресурсам
func (c *Client) GetRuleSet(ctx context.Context, productID int64) (*domain.RuleSet, error) {
	var rules wireRuleSet
	if err := c.getJSON(ctx, fmt.Sprintf("%s/internal/products/%d/availability-rules", c.baseURL, productID), &rules); err != nil {
		return nil, err
	}
	return rules.ToDomain(), nil
}

// GetAvailabilityRules получает правила доступности продукта для ресурса
// resourceID = 0 возвращает правила уровня продукта
func (c *Client) GetAvailabilityRules(ctx context.Context, productID, resourceID int64) ([]domain.AvailabilityRule, error) {
	ruleSet, err := c.GetRuleSet(ctx, productID)
	if err != nil {
		return nil, err
	}
	return ruleSet.ScopedTo(resourceID), nil
}

// GetAvailableBookings спрашивает у продуктового сервиса число доступных
// бронирований в окне [start, end) для продукта и ресурса
func (c *Client) GetAvailableBookings(ctx context.Context, productID, resourceID int64, start, end time.Time) (int, error) {
	query := url.Values{}
	query.Set("resource_id", strconv.FormatInt(resourceID, 10))
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))

	var resp availableBookingsResponse
	endpoint := fmt.Sprintf("%s/internal/products/%d/available-bookings?%s", c.baseURL, productID, query.Encode())
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return 0, err
	}
	return resp.Available, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrProductNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
