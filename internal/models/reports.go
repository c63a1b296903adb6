package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryTotals - счётчики и выручка сводного отчёта
type SummaryTotals struct {
	TotalOrders     int
	CompletedOrders int
	PendingOrders   int
	Revenue         decimal.Decimal
}

// WeekdayRevenue - выручка за день недели (1 - понедельник ... 7 - воскресенье)
type WeekdayRevenue struct {
	Weekday int
	Revenue decimal.Decimal
}

// RecentOrder - заказ для списка последних заказов отчёта
type RecentOrder struct {
	OrderID      string
	CustomerName string
	Amount       decimal.Decimal
	CreatedAt    time.Time
}

// SummaryReport - сводный отчёт по точке за период
type SummaryReport struct {
	Totals SummaryTotals
	Series []WeekdayRevenue
	Recent []RecentOrder
}

// SummaryResponse - модель сводного отчёта для выдачи
type SummaryResponse struct {
	TotalOrders     int                   `json:"totalOrders"`
	CompletedOrders int                   `json:"completedOrders"`
	PendingOrders   int                   `json:"pendingOrders"`
	Revenue         float64               `json:"revenue"`
	Series          []WeekdayResponse     `json:"series"`
	Recent          []RecentOrderResponse `json:"recentOrders"`
}

// WeekdayResponse - элемент ряда выручки по дням недели
type WeekdayResponse struct {
	Weekday int     `json:"weekday"`
	Revenue float64 `json:"revenue"`
}

// RecentOrderResponse - элемент списка последних заказов
type RecentOrderResponse struct {
	OrderID      string  `json:"orderId"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	CreatedAt    string  `json:"createdAt"`
}
