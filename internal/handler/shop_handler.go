package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fsanano/go-shop/internal/account"
	"fsanano/go-shop/internal/logging"
	"fsanano/go-shop/internal/pricing"
	"fsanano/go-shop/internal/service"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid id")
)

// ShopHandler exposes a service.Shop over HTTP. The shop components are not
// safe for concurrent use, so every call goes through mu.
type ShopHandler struct {
	mu     sync.RWMutex
	shop   *service.Shop
	logger *zap.Logger
}

func NewShopHandler(shop *service.Shop, logger *zap.Logger) *ShopHandler {
	return &ShopHandler{shop: shop, logger: logging.OrNop(logger)}
}

type AddUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func (h *ShopHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	h.mu.Lock()
	added := h.shop.Users.AddUser(req.Name, req.Email, req.Age)
	id := h.shop.Users.GetUserCount()
	h.mu.Unlock()

	if !added {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"added": false})
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"added": true, "id": id})
}

func (h *ShopHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	h.mu.RLock()
	user, ok := h.shop.Users.FindUserByID(id)
	h.mu.RUnlock()

	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("user %d not found", id))
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

type AddProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func (h *ShopHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	h.mu.Lock()
	id := h.shop.Products.AddProduct(req.Name, req.Price, req.Stock)
	h.mu.Unlock()

	h.writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	h.mu.RLock()
	product, ok := h.shop.Products.GetProductByID(id)
	stock, _ := h.shop.Products.Stock(id)
	h.mu.RUnlock()

	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("product %d not found", id))
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"product": product, "stock": stock})
}

func (h *ShopHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	ids := h.shop.Products.GetLowStockItems()
	h.mu.RUnlock()

	h.writeJSON(w, http.StatusOK, map[string][]int{"low_stock": ids})
}

type OrderRequest struct {
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (h *ShopHandler) ProcessOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	h.mu.Lock()
	ok := h.shop.Orders.ProcessOrder(req.UserID, req.ProductID, req.Quantity)
	h.mu.Unlock()

	if !ok {
		h.writeError(w, http.StatusBadRequest, errors.New("order rejected"))
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *ShopHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	kind := service.ReportKind(chi.URLParam(r, "kind"))

	h.mu.RLock()
	report := h.shop.Reports.GenerateReport(kind)
	h.mu.RUnlock()

	if report == nil {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("unknown report kind %q", kind))
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// GetReports builds every report kind in parallel. Report generation only
// reads, so the goroutines share the read lock.
func (h *ShopHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	reports := make([]service.Report, len(service.ReportKinds))

	h.mu.RLock()
	var g errgroup.Group
	for i, kind := range service.ReportKinds {
		i, kind := i, kind
		g.Go(func() error {
			reports[i] = h.shop.Reports.GenerateReport(kind)
			if reports[i] == nil {
				return fmt.Errorf("failed to generate %s report", kind)
			}
			return nil
		})
	}
	err := g.Wait()
	h.mu.RUnlock()

	if err != nil {
		h.logger.Error("report generation failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	out := make(map[service.ReportKind]service.Report, len(reports))
	for _, report := range reports {
		out[report.Kind()] = report
	}
	h.writeJSON(w, http.StatusOK, out)
}

type NotificationRequest struct {
	UserID  int    `json:"user_id"`
	Message string `json:"message"`
}

func (h *ShopHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	h.mu.Lock()
	h.shop.Notifications.SendNotification(req.UserID, req.Message)
	count := h.shop.Notifications.Count()
	h.mu.Unlock()

	h.writeJSON(w, http.StatusAccepted, map[string]int{"count": count})
}

type QuoteRequest struct {
	Items        []pricing.LineItem `json:"items"`
	DiscountRate float64            `json:"discount_rate"`
	TaxRate      float64            `json:"tax_rate"`
	ShippingCost float64            `json:"shipping_cost"`
	Currency     string             `json:"currency"`
}

func (h *ShopHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	h.writeJSON(w, http.StatusOK, pricing.Quote(req.Items, req.DiscountRate, req.TaxRate, req.ShippingCost, req.Currency))
}

type PaymentFeeRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

func (h *ShopHandler) PaymentFee(w http.ResponseWriter, r *http.Request) {
	var req PaymentFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]float64{"total": pricing.CalculatePaymentWithFee(req.Amount, req.Method)})
}

// AccountStatus accepts an account object, or a JSON null for "no account".
func (h *ShopHandler) AccountStatus(w http.ResponseWriter, r *http.Request) {
	var acc *account.Account
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		h.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]account.Status{"status": account.GetUserStatus(acc)})
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// writeJSON encodes v before writing the header so an unencodable value
// becomes a 500 instead of a truncated success.
func (h *ShopHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *ShopHandler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
