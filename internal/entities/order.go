package entities

import "time"

type Order struct {
	ID              string
	OrderID         string
	CustomerName    string
	ShippingAddress string
	Items           []OrderItem
	Status          OrderStatusType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	Name     string
	Quantity int
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderInProgress OrderStatusType = "in_progress"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type OrderModify struct {
	ID              *string
	OrderID         *string
	CustomerName    *string
	ShippingAddress *string
	Items           []OrderItem
	Status          *OrderStatusType
}
