package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	getOrdersBase = `SELECT o.id, o.shop_id, c.name, os.status, os.created_at, o.created_at,
						COALESCE(p.step, ''), COALESCE(r.reason, ''), COALESCE(r.note, '')
					 FROM ORDERS o
					 JOIN CUSTOMERS c ON c.id = o.customer_id
					 JOIN ORDER_STATUS os ON os.order_id = o.id
					 JOIN (
					     SELECT order_id, MAX(seq) AS max_seq
					     FROM ORDER_STATUS
					     GROUP BY order_id
					 ) AS latest_os ON latest_os.order_id = o.id AND os.seq = latest_os.max_seq
					 LEFT JOIN LATERAL (
					     SELECT step FROM ORDER_PROCESSING WHERE order_id = o.id ORDER BY seq DESC LIMIT 1
					 ) AS p ON true
					 LEFT JOIN REJECTED_ORDERS r ON r.order_id = o.id
					 WHERE ($1 = '' OR o.shop_id::text = $1)`
	GetOrdersAsc  = getOrdersBase + ` ORDER BY o.created_at ASC;`
	GetOrdersDesc = getOrdersBase + ` ORDER BY o.created_at DESC;`

	GetOrderDetail = `SELECT o.id, c.name, c.phone, COALESCE(a.address, ''),
						sv.name, sv.price, ld.weight, d.kind, d.fee,
						os.status, os.created_at, o.created_at,
						COALESCE(r.reason, ''), COALESCE(r.note, '')
					  FROM ORDERS o
					  JOIN CUSTOMERS c ON c.id = o.customer_id
					  LEFT JOIN LATERAL (
					      SELECT address FROM CUSTOMER_ADDRESSES WHERE customer_id = c.id LIMIT 1
					  ) AS a ON true
					  JOIN SHOP_SERVICES sv ON sv.id = o.service_id
					  JOIN LAUNDRY_DETAILS ld ON ld.id = o.laundry_detail_id
					  JOIN DELIVERY_OPTIONS d ON d.id = o.delivery_id
					  JOIN ORDER_STATUS os ON os.order_id = o.id
					  JOIN (
					      SELECT order_id, MAX(seq) AS max_seq
					      FROM ORDER_STATUS
					      GROUP BY order_id
					  ) AS latest_os ON latest_os.order_id = o.id AND os.seq = latest_os.max_seq
					  LEFT JOIN REJECTED_ORDERS r ON r.order_id = o.id
					  WHERE o.id::text = $1;`

	GetStatusHistoryRows = `SELECT seq, status, created_at FROM ORDER_STATUS WHERE order_id::text = $1 ORDER BY seq;`
	CheckOrderExists     = `SELECT EXISTS(SELECT 1 FROM ORDERS WHERE id::text = $1);`

	LockOrder        = `SELECT id FROM ORDERS WHERE id::text = $1 FOR UPDATE;`
	GetCurrentStatus = `SELECT status FROM ORDER_STATUS WHERE order_id::text = $1 ORDER BY seq DESC LIMIT 1;`
	InsertStatus     = `INSERT INTO ORDER_STATUS (order_id, seq, status, created_at)
						SELECT $1::uuid, COALESCE(MAX(seq), 0) + 1, $2, $3
						FROM ORDER_STATUS WHERE order_id::text = $1;`
	InsertRejection = `INSERT INTO REJECTED_ORDERS (order_id, reason, note, created_at)
					   VALUES ($1::uuid, $2, $3, $4)
					   ON CONFLICT (order_id) DO NOTHING;`

	GetLastStep      = `SELECT step FROM ORDER_PROCESSING WHERE order_id::text = $1 ORDER BY seq DESC LIMIT 1;`
	InsertProcessing = `INSERT INTO ORDER_PROCESSING (order_id, seq, step, created_at)
						SELECT $1::uuid, COALESCE(MAX(seq), 0) + 1, $2, $3
						FROM ORDER_PROCESSING WHERE order_id::text = $1;`

	UpdateOrderWeight = `UPDATE LAUNDRY_DETAILS SET weight = $2
						 WHERE id = (SELECT laundry_detail_id FROM ORDERS WHERE id::text = $1);`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

// GetOrders - список заказов с текущим статусом и последним шагом обработки.
// Пустой shopID - заказы всех точек.
func (s *OrderDatabase) GetOrders(ctx context.Context, shopID string, descending bool) ([]models.OrderListItem, error) {
	query := GetOrdersAsc
	if descending {
		query = GetOrdersDesc
	}
	var orders []models.OrderListItem
	rows, err := s.DB.Pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	for rows.Next() {
		var item models.OrderListItem
		err := rows.Scan(
			&item.OrderID,
			&item.ShopID,
			&item.CustomerName,
			&item.Status,
			&item.UpdatedAt,
			&item.CreatedAt,
			&item.LastStep,
			&item.Reason,
			&item.Note,
		)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, item)
	}
	return orders, err
}

// GetOrderDetail - развёрнутая карточка заказа
func (s *OrderDatabase) GetOrderDetail(ctx context.Context, orderID string) (*models.OrderDetail, error) {
	var detail models.OrderDetail

	err := s.DB.Pool.QueryRow(ctx, GetOrderDetail, orderID).Scan(
		&detail.OrderID,
		&detail.CustomerName,
		&detail.CustomerPhone,
		&detail.Address,
		&detail.ServiceName,
		&detail.ServicePrice,
		&detail.Weight,
		&detail.DeliveryKind,
		&detail.DeliveryFee,
		&detail.Status,
		&detail.UpdatedAt,
		&detail.CreatedAt,
		&detail.Reason,
		&detail.Note,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order detail: %w", err)
	}

	return &detail, nil
}

// GetStatusHistory - история статусов заказа по порядку добавления
func (s *OrderDatabase) GetStatusHistory(ctx context.Context, orderID string) ([]models.StatusRecord, error) {
	var history []models.StatusRecord
	rows, err := s.DB.Pool.Query(ctx, GetStatusHistoryRows, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get status history: %w", err)
	}
	for rows.Next() {
		var record models.StatusRecord
		if err := rows.Scan(&record.Seq, &record.Status, &record.CreatedAt); err != nil {
			return history, fmt.Errorf("failed scan status record: %w", err)
		}
		history = append(history, record)
	}
	// пустая история неизвестного заказа - 404, а не пустая выдача
	if len(history) == 0 {
		var exists bool
		if err := s.DB.Pool.QueryRow(ctx, CheckOrderExists, orderID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check order exists: %w", err)
		}
		if !exists {
			return nil, ErrOrderNotFound
		}
	}
	return history, err
}

// AppendStatus - добавление записи истории статусов в одной транзакции.
// Строка заказа блокируется на время транзакции, перевод проверяется по таблице
// переходов. При отклонении добавляется строка причины.
func (s *OrderDatabase) AppendStatus(ctx context.Context, orderID string, status string, rejection *models.RejectionData, updatedAt time.Time) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AppendStatus. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// Блокируем заказ, параллельные смены статуса выполняются по очереди
	var lockedID string
	err = tx.QueryRow(ctx, LockOrder, orderID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrOrderNotFound
			return err
		}
		return fmt.Errorf("failed to lock order: %w", err)
	}

	// Текущий статус - запись с максимальным порядковым номером
	var current string
	err = tx.QueryRow(ctx, GetCurrentStatus, orderID).Scan(&current)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get current status: %w", err)
		}
		current = ""
		err = nil
	}

	if !models.CanTransition(current, status) {
		err = ErrInvalidTransition
		return err
	}

	_, err = tx.Exec(ctx, InsertStatus, orderID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert status: %w", err)
	}

	if rejection != nil {
		_, err = tx.Exec(ctx, InsertRejection, orderID, rejection.Reason, rejection.Note, updatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert rejection: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("AppendStatus. Commit failed: %w", err)
	}

	return nil
}

// AppendProcessing - добавление шага обработки в одной транзакции.
// Шаг допустим только для заказа в статусе Processing и строго за последним
// выполненным шагом. Шаг "Out for Delivery" добавляет также запись статуса
// "For Delivery" - обе строки фиксируются вместе.
func (s *OrderDatabase) AppendProcessing(ctx context.Context, orderID string, step string, updatedAt time.Time) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AppendProcessing. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var lockedID string
	err = tx.QueryRow(ctx, LockOrder, orderID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrOrderNotFound
			return err
		}
		return fmt.Errorf("failed to lock order: %w", err)
	}

	var current string
	err = tx.QueryRow(ctx, GetCurrentStatus, orderID).Scan(&current)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get current status: %w", err)
		}
		current = ""
		err = nil
	}
	if current != models.OrderStatusProcessing {
		err = ErrOrderNotInWork
		return err
	}

	var lastStep string
	err = tx.QueryRow(ctx, GetLastStep, orderID).Scan(&lastStep)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get last step: %w", err)
		}
		lastStep = ""
		err = nil
	}

	if !models.StepAllowed(lastStep, step) {
		err = ErrStepOutOfOrder
		return err
	}

	_, err = tx.Exec(ctx, InsertProcessing, orderID, step, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert processing step: %w", err)
	}

	// последний шаг переводит заказ в статус "For Delivery"
	if status, ok := models.StatusForStep(step); ok {
		_, err = tx.Exec(ctx, InsertStatus, orderID, status, updatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert delivery status: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("AppendProcessing. Commit failed: %w", err)
	}

	return nil
}

// UpdateWeight - перезапись веса белья заказа (история не ведётся)
func (s *OrderDatabase) UpdateWeight(ctx context.Context, orderID string, weight decimal.Decimal) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateOrderWeight, orderID, weight)
	if err != nil {
		return fmt.Errorf("failed to update weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
