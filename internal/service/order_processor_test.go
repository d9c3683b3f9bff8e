package service

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type shopFixture struct {
	users     *UserManager
	products  *ProductManager
	processor *OrderProcessor
	userID    int
	productID int
}

func newShopFixture(t *testing.T, price float64, stock int) *shopFixture {
	t.Helper()

	users := NewUserManager()
	require.True(t, users.AddUser("John Doe", "john@example.com", 25))

	products := NewProductManager()
	productID := products.AddProduct("Widget", price, stock)

	return &shopFixture{
		users:     users,
		products:  products,
		processor: NewOrderProcessor(users, products, zaptest.NewLogger(t)),
		userID:    1,
		productID: productID,
	}
}

func (f *shopFixture) stock(t *testing.T) int {
	t.Helper()
	stock, ok := f.products.Stock(f.productID)
	require.True(t, ok)
	return stock
}

func TestProcessOrder_Success(t *testing.T) {
	f := newShopFixture(t, 19.99, 100)
	fixed := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	f.processor.now = func() time.Time { return fixed }

	require.True(t, f.processor.ProcessOrder(f.userID, f.productID, 5))

	assert.Equal(t, 95, f.stock(t))

	orders := f.processor.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, f.userID, orders[0].UserID)
	assert.Equal(t, f.productID, orders[0].ProductID)
	assert.Equal(t, 5, orders[0].Quantity)
	assert.InDelta(t, 99.95, orders[0].Total, 1e-9)
	assert.Equal(t, fixed, orders[0].Date)

	sales := f.processor.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, fixed.UnixMilli(), sales[0].Timestamp)
	assert.InDelta(t, 99.95, sales[0].Revenue, 1e-9)

	assert.InDelta(t, 99.95, f.processor.GetSalesTotal(), 1e-9)
	assert.Equal(t, 1, f.processor.GetSalesCount())
}

func TestProcessOrder_QuantityOutOfRange(t *testing.T) {
	for _, qty := range []int{-1, 0, MaxOrderQuantity + 1, 5000} {
		f := newShopFixture(t, 10, 10000)

		assert.False(t, f.processor.ProcessOrder(f.userID, f.productID, qty), "quantity %d", qty)
		assert.Empty(t, f.processor.Orders())
		assert.Empty(t, f.processor.Sales())
		assert.Equal(t, 10000, f.stock(t))
	}
}

func TestProcessOrder_QuantityBounds(t *testing.T) {
	f := newShopFixture(t, 1, 2000)
	assert.True(t, f.processor.ProcessOrder(f.userID, f.productID, MinOrderQuantity))
	assert.True(t, f.processor.ProcessOrder(f.userID, f.productID, MaxOrderQuantity))
	assert.Equal(t, 2000-MinOrderQuantity-MaxOrderQuantity, f.stock(t))
}

func TestProcessOrder_Rejections(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newShopFixture(t, 10, 10)
		assert.False(t, f.processor.ProcessOrder(99, f.productID, 1))
		assert.Equal(t, 10, f.stock(t))
	})

	t.Run("insufficient stock", func(t *testing.T) {
		f := newShopFixture(t, 10, 1)
		assert.False(t, f.processor.ProcessOrder(f.userID, f.productID, 2))
		assert.Equal(t, 1, f.stock(t))
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newShopFixture(t, 10, 10)
		assert.False(t, f.processor.ProcessOrder(f.userID, 42, 1))
	})

	t.Run("free product", func(t *testing.T) {
		f := newShopFixture(t, 0, 10)
		assert.False(t, f.processor.ProcessOrder(f.userID, f.productID, 1))
		assert.Equal(t, 10, f.stock(t))
	})

	for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		t.Run(fmt.Sprintf("price %v", price), func(t *testing.T) {
			f := newShopFixture(t, price, 10)
			assert.False(t, f.processor.ProcessOrder(f.userID, f.productID, 1))
			assert.Empty(t, f.processor.Orders())
			assert.Empty(t, f.processor.Sales())
			assert.Equal(t, 10, f.stock(t))
			assert.Equal(t, 0.0, f.processor.GetSalesTotal())
		})
	}

	t.Run("negative price", func(t *testing.T) {
		f := newShopFixture(t, -5, 10)
		assert.False(t, f.processor.ProcessOrder(f.userID, f.productID, 1))
		assert.Empty(t, f.processor.Sales())
	})
}

func TestGetSalesTotal_SumsRevenue(t *testing.T) {
	f := newShopFixture(t, 2.5, 100)
	require.True(t, f.processor.ProcessOrder(f.userID, f.productID, 2))
	require.True(t, f.processor.ProcessOrder(f.userID, f.productID, 4))

	assert.Equal(t, 15.0, f.processor.GetSalesTotal())
	assert.Equal(t, 94, f.stock(t))
}
