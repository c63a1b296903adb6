package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"
)

// fakeHTTPClient - последовательность ответов вместо настоящего транспорта
type fakeHTTPClient struct {
	responses []*http.Response
	errs      []error
	calls     int
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	index := f.calls
	f.calls++
	if index >= len(f.responses) {
		index = len(f.responses) - 1
	}
	return f.responses[index], f.errs[index]
}

func makeResponse(status int, body string, headers http.Header) *http.Response {
	if headers == nil {
		headers = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     headers,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestClient_GetPayment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		fake := &fakeHTTPClient{
			responses: []*http.Response{makeResponse(http.StatusOK, `{"reference":"PAY-42","status":"paid","amount":350}`, nil)},
			errs:      []error{nil},
		}
		client := NewClient("http://localhost:8081", fake)

		resp, err := client.GetPayment(context.Background(), "PAY-42")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if resp.Status != PaymentStatusPaid {
			t.Errorf("Expected status %q, got %q", PaymentStatusPaid, resp.Status)
		}
		if resp.Reference != "PAY-42" {
			t.Errorf("Expected reference PAY-42, got %q", resp.Reference)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		fake := &fakeHTTPClient{
			responses: []*http.Response{makeResponse(http.StatusNotFound, "", nil)},
			errs:      []error{nil},
		}
		client := NewClient("http://localhost:8081", fake)

		_, err := client.GetPayment(context.Background(), "PAY-404")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("Expected ErrPaymentNotFound, got: '%v'", err)
		}
		if fake.calls != 1 {
			t.Errorf("Expected no retries for not found, got %d calls", fake.calls)
		}
	})

	t.Run("RateLimit", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Retry-After", "30")
		fake := &fakeHTTPClient{
			responses: []*http.Response{makeResponse(http.StatusTooManyRequests, "", headers)},
			errs:      []error{nil},
		}
		client := NewClient("http://localhost:8081", fake)

		_, err := client.GetPayment(context.Background(), "PAY-42")
		var rateLimitErr *RateLimitError
		if !errors.As(err, &rateLimitErr) {
			t.Fatalf("Expected RateLimitError, got: '%v'", err)
		}
		if rateLimitErr.RetryAfter != 30*time.Second {
			t.Errorf("Expected retry after 30s, got %v", rateLimitErr.RetryAfter)
		}
		if fake.calls != 1 {
			t.Errorf("Expected no retries for rate limit, got %d calls", fake.calls)
		}
	})

	t.Run("RetryAfterServerError", func(t *testing.T) {
		fake := &fakeHTTPClient{
			responses: []*http.Response{
				makeResponse(http.StatusInternalServerError, "", nil),
				makeResponse(http.StatusOK, `{"reference":"PAY-42","status":"pending"}`, nil),
			},
			errs: []error{nil, nil},
		}
		client := NewClient("http://localhost:8081", fake)

		resp, err := client.GetPayment(context.Background(), "PAY-42")
		if err != nil {
			t.Fatalf("Expected no error after retry, got: '%v'", err)
		}
		if resp.Status != PaymentStatusPending {
			t.Errorf("Expected status %q, got %q", PaymentStatusPending, resp.Status)
		}
		if fake.calls != 2 {
			t.Errorf("Expected one retry, got %d calls", fake.calls)
		}
	})
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		Name     string
		Header   string
		Expected time.Duration
	}{
		{"Seconds", "10", 10 * time.Second},
		{"Missing header", "", time.Minute},
		{"Garbage", "soon", time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			headers := http.Header{}
			if tc.Header != "" {
				headers.Set("Retry-After", tc.Header)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("ParseRetryAfter() = %v, want %v", got, tc.Expected)
			}
		})
	}
}
