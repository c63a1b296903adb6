package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// GetPayment - запрос состояния платежа по внешнему номеру.
// Сетевые сбои и 5xx повторяются с экспоненциальной задержкой,
// превышение лимита запросов наружу не повторяется.
func (c *Client) GetPayment(ctx context.Context, reference string) (*PaymentResponse, error) {
	var result PaymentResponse

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		url := c.baseURL + "/api/payments/" + reference
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return HandleErrorResponse(resp)
		}

		return json.NewDecoder(resp.Body).Decode(&result)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case http.StatusNoContent, http.StatusNotFound:
		return ErrPaymentNotFound
	default:
		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(ErrServiceUnavailable)
		}
		return ErrServiceUnavailable
	}
}
