package router

import (
	"github.com/denmor86/laundromat/internal/config"
	"github.com/denmor86/laundromat/internal/network/handlers"
	"github.com/denmor86/laundromat/internal/network/middleware"
	"github.com/denmor86/laundromat/internal/services"
	"github.com/denmor86/laundromat/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config     config.Config
	Indentity  services.IdentityService
	Orders     services.OrdersService
	Reports    services.ReportsService
	Settlement services.SettlementService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	return &Router{
		Config:     config,
		Indentity:  services.NewIdentity(config, storage.Users),
		Orders:     services.NewOrders(storage.Orders),
		Reports:    services.NewReports(storage.Reports),
		Settlement: services.NewSettlement(storage.Reports, services.NewPaymentsGateway(config.Payments.PaymentsAddr)),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Indentity.GetTokenAuth()
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Use(middleware.MetricsHandle)
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Indentity))
			r.Post("/login", handlers.AuthenticateUserHandle(router.Indentity))
		})
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", handlers.GetOrdersHandler(router.Orders))
				r.Get("/{orderID}", handlers.GetOrderDetailHandler(router.Orders))
				r.Get("/{orderID}/history", handlers.GetStatusHistoryHandler(router.Orders))
				r.Post("/{orderID}/status", handlers.UpdateStatusHandler(router.Orders))
				r.Post("/{orderID}/processing", handlers.AppendProcessingHandler(router.Orders))
				r.Put("/{orderID}/weight", handlers.UpdateWeightHandler(router.Orders))
			})
			r.Get("/reports/summary", handlers.GetSummaryHandler(router.Reports))
		})
	})
	return r
}
