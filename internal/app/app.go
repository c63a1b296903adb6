package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/laundromat/internal/config"
	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/network/router"
	"github.com/denmor86/laundromat/internal/storage"
	"github.com/denmor86/laundromat/internal/worker"
)

func Run(config config.Config, storage storage.Storage) {

	router := router.NewRouter(config, storage)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск воркера сверки квитанций
	worker := worker.NewInvoiceWorker(router.Settlement, config.Payments.BatchSize, config.Payments.PollInterval, config.Payments.ProcessingTimeout)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	worker.Start(workerCtx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
