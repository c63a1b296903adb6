package logger

import (
	"go.uber.org/zap"
)

var instance *zap.SugaredLogger

// Initialize настраивает синглтон логгера с заданным уровнем логирования
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	instance = logger.Sugar()
	return nil
}

// Get возвращает логгер, до Initialize - глушилку
func Get() *zap.SugaredLogger {
	if instance == nil {
		return zap.NewNop().Sugar()
	}
	return instance
}

// Sync сбрасывает буферы логгера
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

func Info(args ...interface{}) {
	Get().Infoln(args...)
}

func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

func Error(args ...interface{}) {
	Get().Errorln(args...)
}

func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
