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
	"go.uber.org/zap"
)

// GetSummaryHandler — сводный отчёт по точке за период.
// Точка берётся из параметра shop, иначе из токена сотрудника.
func GetSummaryHandler(s services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID := r.URL.Query().Get("shop")
		if shopID == "" {
			shopID = helpers.GetUserShop(r.Context())
		}
		if shopID == "" {
			http.Error(w, "Shop is required", http.StatusBadRequest)
			return
		}

		rangeName := r.URL.Query().Get("range")
		if rangeName == "" {
			rangeName = services.RangeToday
		}

		report, err := s.GetSummary(r.Context(), shopID, rangeName)
		if err != nil {
			if errors.Is(err, services.ErrUnknownRange) {
				http.Error(w, "Unknown report range", http.StatusBadRequest)
				return
			}
			logger.Error("Failed to get summary report:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		revenue, _ := report.Totals.Revenue.Float64()
		response := models.SummaryResponse{
			TotalOrders:     report.Totals.TotalOrders,
			CompletedOrders: report.Totals.CompletedOrders,
			PendingOrders:   report.Totals.PendingOrders,
			Revenue:         revenue,
			Series:          make([]models.WeekdayResponse, 0, len(report.Series)),
			Recent:          make([]models.RecentOrderResponse, 0, len(report.Recent)),
		}
		for _, item := range report.Series {
			dayRevenue, _ := item.Revenue.Float64()
			response.Series = append(response.Series, models.WeekdayResponse{
				Weekday: item.Weekday,
				Revenue: dayRevenue,
			})
		}
		for _, order := range report.Recent {
			amount, _ := order.Amount.Float64()
			response.Recent = append(response.Recent, models.RecentOrderResponse{
				OrderID:      order.OrderID,
				CustomerName: order.CustomerName,
				Amount:       amount,
				CreatedAt:    order.CreatedAt.Format(time.RFC3339),
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
