package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr   string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN  string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"secret"`
	PaymentsAddr string `env:"PAYMENTS_SYSTEM_ADDRESS" envDefault:"http://localhost:8081"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// PaymentsConfig модель настроек опроса платёжного сервиса (оплата квитанций)
type PaymentsConfig struct {
	PaymentsAddr      string
	BatchSize         int
	PollInterval      time.Duration
	ProcessingTimeout time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Payments PaymentsConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		payments = pflag.StringP("payments", "p", args.PaymentsAddr, "Payments service address in a form host:port.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Payments: PaymentsConfig{
			PaymentsAddr:      *payments,
			BatchSize:         10,
			PollInterval:      5 * time.Second,
			ProcessingTimeout: 10 * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Payments: PaymentsConfig{
			PaymentsAddr:      ":8081",
			BatchSize:         10,
			PollInterval:      5 * time.Second,
			ProcessingTimeout: 10 * time.Second,
		},
	}
}
