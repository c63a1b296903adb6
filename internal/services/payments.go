package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/denmor86/laundromat/internal/client"
	"github.com/denmor86/laundromat/internal/logger"
)

type PaymentsGateway struct {
	Client  *client.Client
	Limiter *client.RateLimiter
}

// Создание шлюза к платёжному сервису
func NewPaymentsGateway(baseURL string) client.PaymentsService {
	return &PaymentsGateway{
		Client:  client.NewClient(baseURL, &http.Client{}),
		Limiter: client.NewRateLimiter(),
	}
}

// GetPaymentStatus - состояние платежа по внешнему номеру квитанции.
// При превышении лимита запросов шлюз блокируется на указанное сервисом
// время, платёж считается ожидающим.
func (s *PaymentsGateway) GetPaymentStatus(ctx context.Context, reference string) (string, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := s.Client.GetPayment(ctx, reference)
	if err != nil {
		// проверка большого количеста запросов
		if rateLimitErr, ok := err.(*client.RateLimitError); ok {
			logger.Warn("Too many requests to payments service:", reference)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return client.PaymentStatusPending, nil
		}
		return "", err
	}
	// проверяем возможные статусы
	if resp.Status != client.PaymentStatusPending &&
		resp.Status != client.PaymentStatusPaid &&
		resp.Status != client.PaymentStatusFailed {
		logger.Error("Undefined payment status:", resp.Status)
		return "", fmt.Errorf("undefined payment status %s", resp.Status)
	}
	return resp.Status, nil
}
