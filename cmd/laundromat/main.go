package main

import (
	"context"
	"fmt"

	"github.com/denmor86/laundromat/internal/app"
	"github.com/denmor86/laundromat/internal/config"
	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// подключение к БД и миграция схемы
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	if err := database.Initialize(context.Background()); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	defer database.Close()
	// запуск сервера
	app.Run(config, storage.NewStorage(database))
}
