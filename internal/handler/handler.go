package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	router *chi.Mux
	shop   *ShopHandler
}

func NewHandler(shop *ShopHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(Brotli)

	h := &Handler{
		router: router,
		shop:   shop,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		r.Post("/users", h.shop.AddUser)
		r.Get("/users/{id}", h.shop.GetUser)

		r.Post("/products", h.shop.AddProduct)
		r.Get("/products/{id}", h.shop.GetProduct)
		r.Get("/inventory/low-stock", h.shop.GetLowStock)

		r.Post("/orders", h.shop.ProcessOrder)

		r.Get("/reports", h.shop.GetReports)
		r.Get("/reports/{kind}", h.shop.GetReport)

		r.Post("/notifications", h.shop.SendNotification)

		r.Post("/quotes", h.shop.Quote)
		r.Post("/payments/fee", h.shop.PaymentFee)
		r.Post("/accounts/status", h.shop.AccountStatus)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
