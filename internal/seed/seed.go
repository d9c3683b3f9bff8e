// Package seed loads users, products and orders from a YAML file into a
// service.Shop.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fsanano/go-shop/internal/service"
)

var ErrEmptySeed = errors.New("seed file has no entries")

type User struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Age   int    `yaml:"age"`
}

type Product struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Stock int     `yaml:"stock"`
}

type Order struct {
	UserID    int `yaml:"user_id"`
	ProductID int `yaml:"product_id"`
	Quantity  int `yaml:"quantity"`
}

type File struct {
	Users    []User    `yaml:"users"`
	Products []Product `yaml:"products"`
	Orders   []Order   `yaml:"orders"`
}

// Result counts how many seed entries the managers accepted. Products are
// always accepted.
type Result struct {
	UsersAdded     int `json:"users_added"`
	UsersRejected  int `json:"users_rejected"`
	ProductsAdded  int `json:"products_added"`
	OrdersAdded    int `json:"orders_added"`
	OrdersRejected int `json:"orders_rejected"`
}

func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySeed
		}
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	if len(f.Users) == 0 && len(f.Products) == 0 && len(f.Orders) == 0 {
		return nil, ErrEmptySeed
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()

	return Parse(fh)
}

// Apply feeds users, then products, then orders into shop.
func (f *File) Apply(shop *service.Shop) Result {
	var res Result

	for _, u := range f.Users {
		if shop.Users.AddUser(u.Name, u.Email, u.Age) {
			res.UsersAdded++
		} else {
			res.UsersRejected++
		}
	}

	for _, p := range f.Products {
		shop.Products.AddProduct(p.Name, p.Price, p.Stock)
		res.ProductsAdded++
	}

	for _, o := range f.Orders {
		if shop.Orders.ProcessOrder(o.UserID, o.ProductID, o.Quantity) {
			res.OrdersAdded++
		} else {
			res.OrdersRejected++
		}
	}

	return res
}
