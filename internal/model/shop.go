package model

import "time"

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Order struct {
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
	Date      time.Time `json:"date"`
}

// Sale is recorded once per successful order. Timestamp is in epoch milliseconds.
type Sale struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
	Timestamp int64   `json:"timestamp"`
}

type Notification struct {
	UserID  int       `json:"user_id"`
	Message string    `json:"message"`
	Sent    time.Time `json:"sent"`
}
