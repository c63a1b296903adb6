package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/laundromat/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
)

const testOrderID = "0e0f2845-5b3b-4361-a282-9bbc60e100c1"

func newOrdersMock(t *testing.T) (pgxmock.PgxPoolIface, OrdersStorage) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("Failed to create pool mock: '%v'", err)
	}
	return mock, NewOrdersStorage(&Database{Pool: mock})
}

func TestOrderDatabase_AppendStatus(t *testing.T) {
	updatedAt := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Transition appends row with next seq", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusPending))
		mock.ExpectExec(InsertStatus).WithArgs(testOrderID, models.OrderStatusProcessing, updatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := orders.AppendStatus(context.Background(), testOrderID, models.OrderStatusProcessing, nil, updatedAt)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Rejection appends status and reason rows together", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusPending))
		mock.ExpectExec(InsertStatus).WithArgs(testOrderID, models.OrderStatusRejected, updatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(InsertRejection).WithArgs(testOrderID, "Out of service area", "call back", updatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		rejection := &models.RejectionData{Reason: "Out of service area", Note: "call back"}
		err := orders.AppendStatus(context.Background(), testOrderID, models.OrderStatusRejected, rejection, updatedAt)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Terminal current status rejects transition", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusCompleted))
		mock.ExpectRollback()

		err := orders.AppendStatus(context.Background(), testOrderID, models.OrderStatusProcessing, nil, updatedAt)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("Expected ErrInvalidTransition, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Repeated transition rejects", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusProcessing))
		mock.ExpectRollback()

		err := orders.AppendStatus(context.Background(), testOrderID, models.OrderStatusProcessing, nil, updatedAt)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("Expected ErrInvalidTransition, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Unknown order", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		err := orders.AppendStatus(context.Background(), testOrderID, models.OrderStatusProcessing, nil, updatedAt)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("Expected ErrOrderNotFound, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})
}

func TestOrderDatabase_AppendProcessing(t *testing.T) {
	updatedAt := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Out for Delivery appends step and For Delivery status together", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusProcessing))
		mock.ExpectQuery(GetLastStep).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"step"}).AddRow(models.StepFolded))
		mock.ExpectExec(InsertProcessing).WithArgs(testOrderID, models.StepOutForDeliver, updatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(InsertStatus).WithArgs(testOrderID, models.OrderStatusForDelivery, updatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := orders.AppendProcessing(context.Background(), testOrderID, models.StepOutForDeliver, updatedAt)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Intermediate step appends no status row", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusProcessing))
		mock.ExpectQuery(GetLastStep).WithArgs(testOrderID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectExec(InsertProcessing).WithArgs(testOrderID, models.StepWashed, updatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := orders.AppendProcessing(context.Background(), testOrderID, models.StepWashed, updatedAt)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Step out of order rolls back", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusProcessing))
		mock.ExpectQuery(GetLastStep).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"step"}).AddRow(models.StepWashed))
		mock.ExpectRollback()

		err := orders.AppendProcessing(context.Background(), testOrderID, models.StepFolded, updatedAt)
		if !errors.Is(err, ErrStepOutOfOrder) {
			t.Fatalf("Expected ErrStepOutOfOrder, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Order outside Processing rolls back", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		mock.ExpectQuery(LockOrder).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(testOrderID))
		mock.ExpectQuery(GetCurrentStatus).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(models.OrderStatusPending))
		mock.ExpectRollback()

		err := orders.AppendProcessing(context.Background(), testOrderID, models.StepWashed, updatedAt)
		if !errors.Is(err, ErrOrderNotInWork) {
			t.Fatalf("Expected ErrOrderNotInWork, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})
}

func TestOrderDatabase_GetStatusHistory(t *testing.T) {
	t.Run("History rows by seq", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		createdAt := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(GetStatusHistoryRows).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"seq", "status", "created_at"}).
				AddRow(1, models.OrderStatusPending, createdAt).
				AddRow(2, models.OrderStatusProcessing, createdAt))

		history, err := orders.GetStatusHistory(context.Background(), testOrderID)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if len(history) != 2 || history[1].Seq != 2 || history[1].Status != models.OrderStatusProcessing {
			t.Errorf("Unexpected history: %+v", history)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Unknown order", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectQuery(GetStatusHistoryRows).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"seq", "status", "created_at"}))
		mock.ExpectQuery(CheckOrderExists).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := orders.GetStatusHistory(context.Background(), testOrderID)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("Expected ErrOrderNotFound, got: '%v'", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})

	t.Run("Order without history yet", func(t *testing.T) {
		mock, orders := newOrdersMock(t)
		defer mock.Close()

		mock.ExpectQuery(GetStatusHistoryRows).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"seq", "status", "created_at"}))
		mock.ExpectQuery(CheckOrderExists).WithArgs(testOrderID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		history, err := orders.GetStatusHistory(context.Background(), testOrderID)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if len(history) != 0 {
			t.Errorf("Expected empty history, got: %+v", history)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: '%v'", err)
		}
	})
}
