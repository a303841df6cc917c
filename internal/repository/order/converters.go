package order

import (
	"encoding/json"
	"fmt"

	"curior/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemsDB []OrderItemDB
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &itemsDB); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}

	items := make([]entities.OrderItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		items[i] = entities.OrderItem{
			Name:     itemDB.Name,
			Quantity: itemDB.Quantity,
		}
	}

	return &entities.Order{
		ID:              o.ID,
		OrderID:         o.OrderID,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		Status:          entities.OrderStatusType(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}, nil
}

func ItemsFromDomain(items []entities.OrderItem) ([]byte, error) {
	itemsDB := make([]OrderItemDB, len(items))
	for i, item := range items {
		itemsDB[i] = OrderItemDB{
			Name:     item.Name,
			Quantity: item.Quantity,
		}
	}
	encoded, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	return encoded, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		converted, err := ToDomain(&orderDB)
		if err != nil {
			return nil, err
		}
		result[i] = *converted
	}
	return result, nil
}
