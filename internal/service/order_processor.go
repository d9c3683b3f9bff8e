package service

import (
	"math"
	"time"

	"go.uber.org/zap"

	"fsanano/go-shop/internal/logging"
	"fsanano/go-shop/internal/model"
)

// Accepted order quantities, inclusive.
const (
	MinOrderQuantity = 1
	MaxOrderQuantity = 999
)

// OrderProcessor records orders against the users and products it was built
// with. It is not safe for concurrent use.
type OrderProcessor struct {
	users    *UserManager
	products *ProductManager
	logger   *zap.Logger
	now      func() time.Time

	orders []model.Order
	sales  []model.Sale
}

// NewOrderProcessor wires the processor to its managers. A nil logger
// disables logging.
func NewOrderProcessor(users *UserManager, products *ProductManager, logger *zap.Logger) *OrderProcessor {
	return &OrderProcessor{
		users:    users,
		products: products,
		logger:   logging.OrNop(logger),
		now:      time.Now,
	}
}

// ProcessOrder validates and records an order, reduces stock and records the
// sale. It returns false and changes nothing if any check fails.
func (p *OrderProcessor) ProcessOrder(userID, productID, quantity int) bool {
	log := p.logger.With(
		zap.Int("user_id", userID),
		zap.Int("product_id", productID),
		zap.Int("quantity", quantity),
	)

	if quantity < MinOrderQuantity || quantity > MaxOrderQuantity {
		log.Debug("order rejected: quantity out of range")
		return false
	}

	if _, ok := p.users.FindUserByID(userID); !ok {
		log.Debug("order rejected: user not found")
		return false
	}

	if !p.products.HasStock(productID, quantity) {
		log.Debug("order rejected: insufficient stock")
		return false
	}

	product, ok := p.products.GetProductByID(productID)
	if !ok {
		log.Debug("order rejected: product not found")
		return false
	}

	// NaN fails every comparison, so test for the accepted range.
	total := product.Price * float64(quantity)
	if !(total > 0) || math.IsInf(total, 1) {
		log.Debug("order rejected: total not a positive finite amount", zap.Float64("total", total))
		return false
	}

	p.orders = append(p.orders, model.Order{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Total:     total,
		Date:      p.now(),
	})
	p.products.ReduceStock(productID, quantity)
	p.sales = append(p.sales, model.Sale{
		ProductID: productID,
		Quantity:  quantity,
		Revenue:   total,
		Timestamp: p.now().UnixMilli(),
	})

	log.Debug("order processed", zap.Float64("total", total))
	return true
}

// GetSalesTotal sums the revenue of every recorded sale.
func (p *OrderProcessor) GetSalesTotal() float64 {
	var total float64
	for _, s := range p.sales {
		total += s.Revenue
	}
	return total
}

func (p *OrderProcessor) GetSalesCount() int {
	return len(p.sales)
}

func (p *OrderProcessor) Orders() []model.Order {
	out := make([]model.Order, len(p.orders))
	copy(out, p.orders)
	return out
}

func (p *OrderProcessor) Sales() []model.Sale {
	out := make([]model.Sale, len(p.sales))
	copy(out, p.sales)
	return out
}
