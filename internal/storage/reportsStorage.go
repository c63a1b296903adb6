package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/laundromat/internal/models"
)

// paidInRange - оплаченные квитанции точки с датой оплаты в периоде.
// Общий фрагмент выручки: итог отчёта и ряд по дням недели всегда
// считаются по одному и тому же множеству платежей.
const paidInRange = `SELECT i.order_id, i.amount, s.created_at AS paid_at
					 FROM INVOICES i
					 JOIN INVOICE_STATUS s ON s.invoice_id = i.id AND s.status = 'Paid'
					 JOIN ORDERS o ON o.id = i.order_id
					 WHERE o.shop_id::text = $1 AND s.created_at >= $2`

const (
	GetSummaryTotals = `WITH latest AS (
							SELECT os.order_id, os.status
							FROM ORDER_STATUS os
							JOIN (
							    SELECT order_id, MAX(seq) AS max_seq
							    FROM ORDER_STATUS
							    GROUP BY order_id
							) AS m ON m.order_id = os.order_id AND os.seq = m.max_seq
						),
						in_range AS (
							SELECT o.id, l.status
							FROM ORDERS o
							JOIN latest l ON l.order_id = o.id
							WHERE o.shop_id::text = $1 AND o.created_at >= $2
						),
						paid AS (` + paidInRange + `)
						SELECT
							(SELECT COUNT(*) FROM in_range),
							(SELECT COUNT(*) FROM in_range WHERE status = 'Completed'),
							(SELECT COUNT(*) FROM in_range WHERE status = 'Pending'),
							COALESCE((SELECT SUM(amount) FROM paid), 0);`

	GetRevenueByWeekday = `SELECT EXTRACT(ISODOW FROM p.paid_at)::int AS weekday,
							   COALESCE(SUM(p.amount), 0)
						   FROM (` + paidInRange + `) AS p
						   GROUP BY weekday
						   ORDER BY weekday;`

	GetRecentOrders = `SELECT o.id, c.name, COALESCE(i.amount, 0), o.created_at
					   FROM ORDERS o
					   JOIN CUSTOMERS c ON c.id = o.customer_id
					   LEFT JOIN INVOICES i ON i.order_id = o.id
					   WHERE o.shop_id::text = $1 AND o.created_at >= $2
					   ORDER BY o.created_at DESC
					   LIMIT $3;`

	ClaimInvoicesForSettlement = `UPDATE INVOICES
								  SET retry_count = retry_count + 1,
								      updated_at = NOW()
								  WHERE id IN (
								      SELECT id FROM INVOICES
								      WHERE retry_count < 5
								        AND NOT EXISTS (
								            SELECT 1 FROM INVOICE_STATUS s
								            WHERE s.invoice_id = INVOICES.id
								              AND s.status IN ('Paid', 'Void')
								        )
								      ORDER BY issued_at
								      LIMIT $1
								      FOR UPDATE SKIP LOCKED
								  )
								  RETURNING id, order_id, amount, external_ref, issued_at;`

	InsertInvoiceStatus = `INSERT INTO INVOICE_STATUS (invoice_id, seq, status, created_at)
						   SELECT $1::uuid, COALESCE(MAX(seq), 0) + 1, $2, $3
						   FROM INVOICE_STATUS WHERE invoice_id::text = $1;`
)

type ReportDatabase struct {
	DB *Database
}

// Создание хранилища
func NewReportsStorage(db *Database) ReportsStorage {
	return &ReportDatabase{DB: db}
}

// GetSummaryTotals - счётчики заказов и выручка точки с начала периода.
// Точка без заказов в периоде - нулевые значения, не ошибка.
func (s *ReportDatabase) GetSummaryTotals(ctx context.Context, shopID string, since time.Time) (*models.SummaryTotals, error) {
	var totals models.SummaryTotals

	err := s.DB.Pool.QueryRow(ctx, GetSummaryTotals, shopID, since).Scan(
		&totals.TotalOrders,
		&totals.CompletedOrders,
		&totals.PendingOrders,
		&totals.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary totals: %w", err)
	}
	return &totals, nil
}

// GetRevenueByWeekday - выручка по оплаченным квитанциям за день недели
func (s *ReportDatabase) GetRevenueByWeekday(ctx context.Context, shopID string, since time.Time) ([]models.WeekdayRevenue, error) {
	var series []models.WeekdayRevenue
	rows, err := s.DB.Pool.Query(ctx, GetRevenueByWeekday, shopID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekday revenue: %w", err)
	}
	for rows.Next() {
		var item models.WeekdayRevenue
		if err := rows.Scan(&item.Weekday, &item.Revenue); err != nil {
			return series, fmt.Errorf("failed scan weekday revenue: %w", err)
		}
		series = append(series, item)
	}
	return series, err
}

// GetRecentOrders - последние заказы точки с именем клиента и суммой квитанции
func (s *ReportDatabase) GetRecentOrders(ctx context.Context, shopID string, since time.Time, limit int) ([]models.RecentOrder, error) {
	var orders []models.RecentOrder
	rows, err := s.DB.Pool.Query(ctx, GetRecentOrders, shopID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	for rows.Next() {
		var item models.RecentOrder
		err := rows.Scan(
			&item.OrderID,
			&item.CustomerName,
			&item.Amount,
			&item.CreatedAt,
		)
		if err != nil {
			return orders, fmt.Errorf("failed scan recent order: %w", err)
		}
		orders = append(orders, item)
	}
	return orders, err
}

// ClaimInvoicesForSettlement - захват пачки неоплаченных квитанций для опроса
// платёжного сервиса. Захваченные строки пропускаются параллельными воркерами.
func (s *ReportDatabase) ClaimInvoicesForSettlement(ctx context.Context, count int) ([]models.InvoiceData, error) {
	var invoices []models.InvoiceData
	rows, err := s.DB.Pool.Query(ctx, ClaimInvoicesForSettlement, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim invoices: %w", err)
	}
	for rows.Next() {
		var invoice models.InvoiceData
		err := rows.Scan(
			&invoice.InvoiceID,
			&invoice.OrderID,
			&invoice.Amount,
			&invoice.ExternalRef,
			&invoice.IssuedAt,
		)
		if err != nil {
			return invoices, fmt.Errorf("failed scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	return invoices, err
}

// AppendInvoiceStatus - добавление записи истории статусов квитанции
func (s *ReportDatabase) AppendInvoiceStatus(ctx context.Context, invoiceID string, status string, updatedAt time.Time) error {
	_, err := s.DB.Pool.Exec(ctx, InsertInvoiceStatus, invoiceID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to append invoice status: %w", err)
	}
	return nil
}
