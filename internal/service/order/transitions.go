package order

import (
	"fmt"

	"curior/internal/entities"
)

// orderGraph is the single source of truth for the order lifecycle.
// Delivered and cancelled have no outgoing edges.
var orderGraph = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:    {entities.OrderInProgress, entities.OrderCancelled},
	entities.OrderInProgress: {entities.OrderDelivered, entities.OrderCancelled},
	entities.OrderDelivered:  {},
	entities.OrderCancelled:  {},
}

func isReachable(from, to entities.OrderStatusType) bool {
	for _, next := range orderGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

func roleAllows(actor entities.RoleType, from, to entities.OrderStatusType) bool {
	switch actor {
	case entities.RoleAdmin:
		return true
	case entities.RoleMerchant:
		return to == entities.OrderCancelled
	case entities.RoleHubStaff:
		return from == entities.OrderPending && to == entities.OrderInProgress
	case entities.RoleDriver:
		return from == entities.OrderInProgress && to == entities.OrderDelivered
	default:
		return false
	}
}

// NextStatus decides a single order transition. Pure: the stored order
// is only changed once the caller commits the returned value.
func NextStatus(current entities.Order, target entities.OrderStatusType, actor entities.RoleType) (entities.Order, error) {
	if current.Status.IsTerminal() {
		return entities.Order{}, fmt.Errorf("%w: %s", ErrTerminalState, current.Status)
	}
	if !isReachable(current.Status, target) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}
	if !roleAllows(actor, current.Status, target) {
		return entities.Order{}, fmt.Errorf("%w: %s on %s -> %s", ErrUnauthorized, actor, current.Status, target)
	}

	current.Status = target
	return current, nil
}
