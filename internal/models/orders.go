package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заказов
const (
	OrderStatusPending     = "Pending"
	OrderStatusProcessing  = "Processing"
	OrderStatusForDelivery = "For Delivery"
	OrderStatusCompleted   = "Completed"
	OrderStatusRejected    = "Rejected"
)

// transitions - таблица допустимых переходов статусов заказа.
// Completed и Rejected - терминальные, из них переходов нет.
var transitions = map[string][]string{
	OrderStatusPending:     {OrderStatusProcessing, OrderStatusRejected},
	OrderStatusProcessing:  {OrderStatusForDelivery, OrderStatusRejected},
	OrderStatusForDelivery: {OrderStatusCompleted, OrderStatusRejected},
	OrderStatusCompleted:   {},
	OrderStatusRejected:    {},
}

// KnownStatus проверяет, что метка статуса известна сервису
func KnownStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

// CanTransition проверяет допустимость перехода из текущего статуса в целевой.
// Пустой текущий статус означает отсутствие истории - разрешён любой известный статус.
func CanTransition(current string, target string) bool {
	if !KnownStatus(target) {
		return false
	}
	if current == "" {
		return true
	}
	allowed, ok := transitions[current]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// OrderListItem - строка списка заказов: заказ, имя клиента,
// текущий статус и последний шаг обработки (если есть)
type OrderListItem struct {
	OrderID      string
	ShopID       string
	CustomerName string
	Status       string
	UpdatedAt    time.Time
	CreatedAt    time.Time
	LastStep     string
	Reason       string
	Note         string
}

// OrderDetail - развёрнутая карточка заказа
type OrderDetail struct {
	OrderID       string
	CustomerName  string
	CustomerPhone string
	Address       string
	ServiceName   string
	ServicePrice  decimal.Decimal
	Weight        decimal.Decimal
	DeliveryKind  string
	DeliveryFee   decimal.Decimal
	Status        string
	UpdatedAt     time.Time
	CreatedAt     time.Time
	Reason        string
	Note          string
}

// StatusRecord - запись истории статусов заказа
type StatusRecord struct {
	Seq       int
	Status    string
	CreatedAt time.Time
}

// RejectionData - причина и примечание отклонения заказа
type RejectionData struct {
	Reason string
	Note   string
}

// OrderListResponse - модель строки списка заказов для выдачи
type OrderListResponse struct {
	OrderID      string `json:"orderId"`
	ShopID       string `json:"shopId"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	LastStep     string `json:"lastStep,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Note         string `json:"note,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// OrderDetailResponse - модель карточки заказа для выдачи
type OrderDetailResponse struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Address       string  `json:"address"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	Weight        float64 `json:"weight"`
	DeliveryKind  string  `json:"deliveryKind"`
	DeliveryFee   float64 `json:"deliveryFee"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason,omitempty"`
	Note          string  `json:"note,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// StatusUpdateRequest - модель запроса смены статуса заказа, приходит извне
type StatusUpdateRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Note   string `json:"note,omitempty"`
}

// StatusRecordResponse - модель записи истории статусов для выдачи
type StatusRecordResponse struct {
	Seq       int    `json:"seq"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// WeightUpdateRequest - модель запроса изменения веса заказа
type WeightUpdateRequest struct {
	Weight float64 `json:"weight"`
}
