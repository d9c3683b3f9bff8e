package service

import (
	"slices"

	"fsanano/go-shop/internal/model"
)

// LowStockThreshold is the stock level below which a product is reported as
// low stock.
const LowStockThreshold = 10

// ProductManager owns the catalog and the stock level of each product.
// It is not safe for concurrent use.
type ProductManager struct {
	products  []model.Product
	inventory map[int]int
}

func NewProductManager() *ProductManager {
	return &ProductManager{
		inventory: make(map[int]int),
	}
}

// AddProduct stores a product with its initial stock and returns its ID.
func (m *ProductManager) AddProduct(name string, price float64, stock int) int {
	id := len(m.products) + 1
	m.products = append(m.products, model.Product{ID: id, Name: name, Price: price})
	m.inventory[id] = stock
	return id
}

func (m *ProductManager) GetProductByID(id int) (model.Product, bool) {
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Stock returns the units on hand for id and whether id is stocked at all.
func (m *ProductManager) Stock(id int) (int, bool) {
	stock, ok := m.inventory[id]
	return stock, ok
}

func (m *ProductManager) HasStock(id, quantity int) bool {
	stock, ok := m.inventory[id]
	return ok && stock >= quantity
}

// ReduceStock does not check the remaining stock; callers must call
// HasStock first. Unknown IDs are ignored.
func (m *ProductManager) ReduceStock(id, quantity int) {
	if _, ok := m.inventory[id]; ok {
		m.inventory[id] -= quantity
	}
}

// GetLowStockItems returns the IDs below LowStockThreshold in ascending order.
func (m *ProductManager) GetLowStockItems() []int {
	ids := []int{}
	for id, stock := range m.inventory {
		if stock < LowStockThreshold {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (m *ProductManager) GetProductCount() int {
	return len(m.products)
}

// Products returns a copy of the catalog in insertion order.
func (m *ProductManager) Products() []model.Product {
	out := make([]model.Product, len(m.products))
	copy(out, m.products)
	return out
}
