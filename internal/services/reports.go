package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/models"
	"github.com/denmor86/laundromat/internal/storage"
	"go.uber.org/zap"
)

// Периоды сводного отчёта
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// RecentOrdersLimit - размер списка последних заказов отчёта
const RecentOrdersLimit = 10

var ErrUnknownRange = errors.New("unknown report range")

type ReportsService interface {
	GetSummary(ctx context.Context, shopID string, rangeName string) (*models.SummaryReport, error)
}

type Reports struct {
	Storage storage.ReportsStorage
}

// Создание сервиса
func NewReports(storage storage.ReportsStorage) ReportsService {
	return &Reports{Storage: storage}
}

// RangeStart - начало периода отчёта для текущего момента.
// Неделя считается с понедельника, месяц - с первого числа.
func RangeStart(now time.Time, rangeName string) (time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch rangeName {
	case RangeToday:
		return midnight, nil
	case RangeWeek:
		weekday := int(midnight.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return midnight.AddDate(0, 0, 1-weekday), nil
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, ErrUnknownRange
}

// GetSummary - сводный отчёт по точке за период: счётчики, выручка,
// ряд выручки по дням недели и последние заказы
func (s *Reports) GetSummary(ctx context.Context, shopID string, rangeName string) (*models.SummaryReport, error) {
	since, err := RangeStart(time.Now(), rangeName)
	if err != nil {
		return nil, err
	}

	totals, err := s.Storage.GetSummaryTotals(ctx, shopID, since)
	if err != nil {
		logger.Error("Failed to get summary totals:", zap.Error(err))
		return nil, err
	}

	series, err := s.Storage.GetRevenueByWeekday(ctx, shopID, since)
	if err != nil {
		logger.Error("Failed to get weekday revenue:", zap.Error(err))
		return nil, err
	}

	recent, err := s.Storage.GetRecentOrders(ctx, shopID, since, RecentOrdersLimit)
	if err != nil {
		logger.Error("Failed to get recent orders:", zap.Error(err))
		return nil, err
	}

	return &models.SummaryReport{
		Totals: *totals,
		Series: FillWeek(series),
		Recent: recent,
	}, nil
}

// FillWeek - дополняет ряд выручки нулями до семи дней недели
func FillWeek(series []models.WeekdayRevenue) []models.WeekdayRevenue {
	byDay := make(map[int]models.WeekdayRevenue, len(series))
	for _, item := range series {
		byDay[item.Weekday] = item
	}
	week := make([]models.WeekdayRevenue, 0, 7)
	for day := 1; day <= 7; day++ {
		if item, ok := byDay[day]; ok {
			week = append(week, item)
			continue
		}
		week = append(week, models.WeekdayRevenue{Weekday: day})
	}
	return week
}
