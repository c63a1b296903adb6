package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Статусы платежа во внешнем сервисе
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type PaymentResponse struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount,omitempty"`
	PaidAt    string  `json:"paid_at,omitempty"`
}

type PaymentsService interface {
	GetPaymentStatus(ctx context.Context, reference string) (string, error)
}

var (
	ErrServiceUnavailable = errors.New("payments service unavailable")
	ErrPaymentNotFound    = errors.New("payment not registered")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
