package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/laundromat/internal/models"
	"github.com/shopspring/decimal"
)

type OrdersStorage interface {
	GetOrders(ctx context.Context, shopID string, descending bool) ([]models.OrderListItem, error)
	GetOrderDetail(ctx context.Context, orderID string) (*models.OrderDetail, error)
	GetStatusHistory(ctx context.Context, orderID string) ([]models.StatusRecord, error)
	AppendStatus(ctx context.Context, orderID string, status string, rejection *models.RejectionData, updatedAt time.Time) error
	AppendProcessing(ctx context.Context, orderID string, step string, updatedAt time.Time) error
	UpdateWeight(ctx context.Context, orderID string, weight decimal.Decimal) error
}

type ReportsStorage interface {
	GetSummaryTotals(ctx context.Context, shopID string, since time.Time) (*models.SummaryTotals, error)
	GetRevenueByWeekday(ctx context.Context, shopID string, since time.Time) ([]models.WeekdayRevenue, error)
	GetRecentOrders(ctx context.Context, shopID string, since time.Time, limit int) ([]models.RecentOrder, error)
	ClaimInvoicesForSettlement(ctx context.Context, count int) ([]models.InvoiceData, error)
	AppendInvoiceStatus(ctx context.Context, invoiceID string, status string, updatedAt time.Time) error
}

type UsersStorage interface {
	AddUser(ctx context.Context, user models.UserData) error
	GetUser(ctx context.Context, email string) (*models.UserData, error)
}

type Storage struct {
	Orders  OrdersStorage
	Reports ReportsStorage
	Users   UsersStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{Orders: NewOrdersStorage(db), Reports: NewReportsStorage(db), Users: NewUsersStorage(db)}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")

	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrStepOutOfOrder    = errors.New("processing step is out of order")
	ErrOrderNotInWork    = errors.New("order is not in processing")
)
