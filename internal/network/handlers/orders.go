package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/laundromat/internal/helpers"
	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/models"
	"github.com/denmor86/laundromat/internal/services"
	"github.com/denmor86/laundromat/internal/storage"
	"github.com/denmor86/laundromat/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetOrdersHandler — список заказов с текущим статусом.
// Параметр shop ограничивает выдачу одной точкой, sort=desc - новые сверху.
func GetOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID := r.URL.Query().Get("shop")
		descending := r.URL.Query().Get("sort") == "desc"

		orders, err := s.GetOrders(r.Context(), shopID, descending)
		if err != nil {
			logger.Error("Failed to get orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.OrderListResponse, 0, len(orders))
		for _, order := range orders {
			response = append(response, models.OrderListResponse{
				OrderID:      order.OrderID,
				ShopID:       order.ShopID,
				CustomerName: order.CustomerName,
				Status:       order.Status,
				LastStep:     order.LastStep,
				Reason:       order.Reason,
				Note:         order.Note,
				CreatedAt:    order.CreatedAt.Format(time.RFC3339),
				UpdatedAt:    order.UpdatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetOrderDetailHandler — развёрнутая карточка заказа
func GetOrderDetailHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")
		if !validators.CheckOrderID(orderID) {
			logger.Warn("Invalid order id format", orderID)
			http.Error(w, "Invalid order id format", http.StatusUnprocessableEntity)
			return
		}

		detail, err := s.GetOrderDetail(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get order detail:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		price, _ := detail.ServicePrice.Float64()
		weight, _ := detail.Weight.Float64()
		fee, _ := detail.DeliveryFee.Float64()
		response := models.OrderDetailResponse{
			OrderID:       detail.OrderID,
			CustomerName:  detail.CustomerName,
			CustomerPhone: detail.CustomerPhone,
			Address:       detail.Address,
			ServiceName:   detail.ServiceName,
			ServicePrice:  price,
			Weight:        weight,
			DeliveryKind:  detail.DeliveryKind,
			DeliveryFee:   fee,
			Status:        detail.Status,
			Reason:        detail.Reason,
			Note:          detail.Note,
			CreatedAt:     detail.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     detail.UpdatedAt.Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetStatusHistoryHandler — история статусов заказа
func GetStatusHistoryHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")
		if !validators.CheckOrderID(orderID) {
			logger.Warn("Invalid order id format", orderID)
			http.Error(w, "Invalid order id format", http.StatusUnprocessableEntity)
			return
		}

		history, err := s.GetStatusHistory(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get status history:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(history) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.StatusRecordResponse
		for _, record := range history {
			response = append(response, models.StatusRecordResponse{
				Seq:       record.Seq,
				Status:    record.Status,
				CreatedAt: record.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdateStatusHandler — смена статуса заказа.
// Недопустимый по таблице переходов статус - 409.
func UpdateStatusHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")
		if !validators.CheckOrderID(orderID) {
			logger.Warn("Invalid order id format", orderID)
			http.Error(w, "Invalid order id format", http.StatusUnprocessableEntity)
			return
		}

		var request models.StatusUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.UpdateStatus(r.Context(), orderID, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownStatus):
				http.Error(w, "Unknown order status", http.StatusBadRequest)
			case errors.Is(err, services.ErrReasonRequired):
				http.Error(w, "Rejection reason is required", http.StatusBadRequest)
			case errors.Is(err, storage.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrInvalidTransition):
				http.Error(w, "Status transition is not allowed", http.StatusConflict)
			default:
				logger.Error("Failed to update status:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		email, _ := helpers.GetUserEmail(r.Context())
		logger.Info("Order status updated", "order", orderID, "status", request.Status, "user", email)
		w.WriteHeader(http.StatusOK)
	})
}

// AppendProcessingHandler — добавление шага обработки заказа.
// Нарушение порядка шагов или статус вне Processing - 409.
func AppendProcessingHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")
		if !validators.CheckOrderID(orderID) {
			logger.Warn("Invalid order id format", orderID)
			http.Error(w, "Invalid order id format", http.StatusUnprocessableEntity)
			return
		}

		var request models.ProcessingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.AppendProcessing(r.Context(), orderID, request.Step)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownStep):
				http.Error(w, "Unknown processing step", http.StatusBadRequest)
			case errors.Is(err, storage.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrOrderNotInWork):
				http.Error(w, "Order is not in processing", http.StatusConflict)
			case errors.Is(err, storage.ErrStepOutOfOrder):
				http.Error(w, "Processing step is out of order", http.StatusConflict)
			default:
				logger.Error("Failed to append processing step:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// UpdateWeightHandler — изменение веса белья заказа
func UpdateWeightHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")
		if !validators.CheckOrderID(orderID) {
			logger.Warn("Invalid order id format", orderID)
			http.Error(w, "Invalid order id format", http.StatusUnprocessableEntity)
			return
		}

		var request models.WeightUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.UpdateWeight(r.Context(), orderID, decimal.NewFromFloat(request.Weight))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWeight):
				http.Error(w, "Weight must be positive", http.StatusBadRequest)
			case errors.Is(err, storage.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			default:
				logger.Error("Failed to update weight:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
