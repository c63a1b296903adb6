package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payments-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Infof("Circuit breaker '%s': %s -> %s", name, from.String(), to.String())
		},
	})
}

// InvoiceWorker - воркер сверки квитанций с платёжным сервисом
type InvoiceWorker struct {
	Settlement        services.SettlementService
	Breaker           *gobreaker.CircuitBreaker
	WaitGroup         sync.WaitGroup
	QuitChan          chan struct{}
	BatchSize         int
	PollInterval      time.Duration
	ProcessingTimeout time.Duration
}

// NewInvoiceWorker - конструктор воркера сверки квитанций
func NewInvoiceWorker(settlement services.SettlementService, batchSize int, pollInterval time.Duration, processingTimeout time.Duration) *InvoiceWorker {
	return &InvoiceWorker{
		Settlement:        settlement,
		Breaker:           InitCircuitBreaker(),
		QuitChan:          make(chan struct{}),
		BatchSize:         batchSize,
		PollInterval:      pollInterval,
		ProcessingTimeout: processingTimeout,
	}
}

// Start - запускает воркер в фоне
func (w *InvoiceWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *InvoiceWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *InvoiceWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("InvoiceWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessInvoices(ctx)
		}
	}
}

// ProcessInvoices - сверка пачки квитанций.
// Каждая квитанция сверяется со своим таймаутом, одна зависшая
// сверка не удерживает всю пачку.
func (w *InvoiceWorker) ProcessInvoices(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return
	}

	invoices, err := w.Settlement.ClaimInvoices(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error claim invoices for settlement", err)
		return
	}

	for _, invoice := range invoices {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			settleCtx, cancel := context.WithTimeout(ctx, w.ProcessingTimeout)
			defer cancel()
			return nil, w.Settlement.SettleInvoice(settleCtx, invoice)
		})

		if err != nil {
			logger.Error("Error invoice settlement", err)
		}
	}
}
