package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы квитанций
const (
	InvoiceStatusUnpaid = "Unpaid"
	InvoiceStatusPaid   = "Paid"
	InvoiceStatusVoid   = "Void"
)

// InvoiceData - модель квитанции из хранилища
type InvoiceData struct {
	InvoiceID   string
	OrderID     string
	Amount      decimal.Decimal
	ExternalRef string
	IssuedAt    time.Time
}
