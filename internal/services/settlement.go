package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/laundromat/internal/client"
	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/models"
	"github.com/denmor86/laundromat/internal/storage"
)

type SettlementService interface {
	ClaimInvoices(ctx context.Context, count int) ([]models.InvoiceData, error)
	SettleInvoice(ctx context.Context, invoice models.InvoiceData) error
}

type Settlement struct {
	Storage  storage.ReportsStorage
	Payments client.PaymentsService
}

// Создание сервиса
func NewSettlement(storage storage.ReportsStorage, payments client.PaymentsService) SettlementService {
	return &Settlement{Storage: storage, Payments: payments}
}

// ClaimInvoices - захват пачки неоплаченных квитанций для опроса
func (s *Settlement) ClaimInvoices(ctx context.Context, count int) ([]models.InvoiceData, error) {
	return s.Storage.ClaimInvoicesForSettlement(ctx, count)
}

// SettleInvoice - сверка квитанции с платёжным сервисом.
// Оплаченный платёж добавляет запись "Paid", отклонённый - "Void",
// ожидающий оставляет квитанцию для следующего цикла.
func (s *Settlement) SettleInvoice(ctx context.Context, invoice models.InvoiceData) error {
	// квитанции без внешнего номера сверять не с чем
	if invoice.ExternalRef == "" {
		return nil
	}

	status, err := s.Payments.GetPaymentStatus(ctx, invoice.ExternalRef)
	if err != nil {
		if errors.Is(err, client.ErrPaymentNotFound) {
			logger.Warn("Payment not registered:", invoice.ExternalRef)
			return nil
		}
		return err
	}

	switch status {
	case client.PaymentStatusPaid:
		return s.Storage.AppendInvoiceStatus(ctx, invoice.InvoiceID, models.InvoiceStatusPaid, time.Now())
	case client.PaymentStatusFailed:
		return s.Storage.AppendInvoiceStatus(ctx, invoice.InvoiceID, models.InvoiceStatusVoid, time.Now())
	}
	return nil
}
