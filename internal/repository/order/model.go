package order

import "time"

type OrderDB struct {
	ID              string
	OrderID         string
	CustomerName    string
	ShippingAddress string
	Items           []byte
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemDB struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
