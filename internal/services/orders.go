package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/laundromat/internal/models"
	"github.com/denmor86/laundromat/internal/storage"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrUnknownStep    = errors.New("unknown processing step")
	ErrReasonRequired = errors.New("rejection reason is required")
	ErrInvalidWeight  = errors.New("weight must be positive")
)

type OrdersService interface {
	GetOrders(ctx context.Context, shopID string, descending bool) ([]models.OrderListItem, error)
	GetOrderDetail(ctx context.Context, orderID string) (*models.OrderDetail, error)
	GetStatusHistory(ctx context.Context, orderID string) ([]models.StatusRecord, error)
	UpdateStatus(ctx context.Context, orderID string, request models.StatusUpdateRequest) error
	AppendProcessing(ctx context.Context, orderID string, step string) error
	UpdateWeight(ctx context.Context, orderID string, weight decimal.Decimal) error
}

type Orders struct {
	Storage storage.OrdersStorage
}

// Создание сервиса
func NewOrders(storage storage.OrdersStorage) OrdersService {
	return &Orders{Storage: storage}
}

// GetOrders - список заказов точки (или всех точек) с текущим статусом
func (s *Orders) GetOrders(ctx context.Context, shopID string, descending bool) ([]models.OrderListItem, error) {
	return s.Storage.GetOrders(ctx, shopID, descending)
}

// GetOrderDetail - карточка заказа
func (s *Orders) GetOrderDetail(ctx context.Context, orderID string) (*models.OrderDetail, error) {
	return s.Storage.GetOrderDetail(ctx, orderID)
}

// GetStatusHistory - история статусов заказа
func (s *Orders) GetStatusHistory(ctx context.Context, orderID string) ([]models.StatusRecord, error) {
	return s.Storage.GetStatusHistory(ctx, orderID)
}

// UpdateStatus - добавление записи истории статусов заказа.
// Для статуса Rejected обязательна причина, вместе со статусом
// сохраняется строка отклонения.
func (s *Orders) UpdateStatus(ctx context.Context, orderID string, request models.StatusUpdateRequest) error {
	if !models.KnownStatus(request.Status) {
		return ErrUnknownStatus
	}

	var rejection *models.RejectionData
	if request.Status == models.OrderStatusRejected {
		if request.Reason == "" {
			return ErrReasonRequired
		}
		rejection = &models.RejectionData{Reason: request.Reason, Note: request.Note}
	}

	return s.Storage.AppendStatus(ctx, orderID, request.Status, rejection, time.Now())
}

// AppendProcessing - добавление шага обработки заказа
func (s *Orders) AppendProcessing(ctx context.Context, orderID string, step string) error {
	if !models.KnownStep(step) {
		return ErrUnknownStep
	}
	return s.Storage.AppendProcessing(ctx, orderID, step, time.Now())
}

// UpdateWeight - изменение веса белья заказа
func (s *Orders) UpdateWeight(ctx context.Context, orderID string, weight decimal.Decimal) error {
	if weight.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidWeight
	}
	return s.Storage.UpdateWeight(ctx, orderID, weight)
}
