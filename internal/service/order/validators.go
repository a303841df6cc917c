package order

import (
	"strings"

	"curior/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status entities.OrderStatusType) bool {
	_, ok := orderGraph[status]
	return ok
}

func isValidItems(items []entities.OrderItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !isValidID(item.Name) || item.Quantity < 1 {
			return false
		}
	}
	return true
}
