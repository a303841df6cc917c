package parcel

import (
	"fmt"

	"curior/internal/entities"
)

// parcelGraph is the single source of truth for the parcel lifecycle.
// Delivered and returned have no outgoing edges: they are terminal.
var parcelGraph = map[entities.ParcelStatusType][]entities.ParcelStatusType{
	entities.ParcelCreated:    {entities.ParcelAtHub, entities.ParcelDispatched},
	entities.ParcelAtHub:      {entities.ParcelDispatched, entities.ParcelReturned},
	entities.ParcelDispatched: {entities.ParcelPickedUp, entities.ParcelInTransit, entities.ParcelReturned},
	entities.ParcelPickedUp:   {entities.ParcelInTransit, entities.ParcelDelivered},
	entities.ParcelInTransit:  {entities.ParcelDelivered, entities.ParcelReturned},
	entities.ParcelDelivered:  {},
	entities.ParcelReturned:   {},
}

func isReachable(from, to entities.ParcelStatusType) bool {
	for _, next := range parcelGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// roleAllows gates machine-legal transitions by actor role:
// merchants only hand parcels off to the hub, hub staff run intake,
// dispatch and returns, drivers work the dispatched..delivered leg,
// admins may request any legal transition.
func roleAllows(role entities.RoleType, from, to entities.ParcelStatusType) bool {
	switch role {
	case entities.RoleAdmin:
		return true
	case entities.RoleMerchant:
		return from == entities.ParcelCreated && to == entities.ParcelAtHub
	case entities.RoleHubStaff:
		if to == entities.ParcelReturned {
			return true
		}
		return (from == entities.ParcelCreated && to == entities.ParcelAtHub) ||
			(from == entities.ParcelAtHub && to == entities.ParcelDispatched)
	case entities.RoleDriver:
		fromOK := from == entities.ParcelDispatched ||
			from == entities.ParcelPickedUp ||
			from == entities.ParcelInTransit
		toOK := to == entities.ParcelPickedUp ||
			to == entities.ParcelInTransit ||
			to == entities.ParcelDelivered
		return fromOK && toOK
	default:
		return false
	}
}

// requiresDriver reports whether the target status puts the parcel in
// motion, which is illegal without an assigned driver.
func requiresDriver(to entities.ParcelStatusType) bool {
	switch to {
	case entities.ParcelDispatched, entities.ParcelPickedUp, entities.ParcelInTransit, entities.ParcelDelivered:
		return true
	default:
		return false
	}
}

// NextStatus validates a transition request against the lifecycle
// graph and the actor's role and returns the updated parcel value. It
// performs no persistence; the caller commits the result. Rejections
// come back as the sentinel lifecycle errors, checked in a fixed
// order: terminal state, reachability, role, driver assignment.
func NextStatus(p entities.Parcel, target entities.ParcelStatusType, actor entities.RoleType) (entities.Parcel, error) {
	if p.Status.IsTerminal() {
		return entities.Parcel{}, fmt.Errorf("%w: %s", ErrTerminalState, p.Status)
	}
	if !isReachable(p.Status, target) {
		return entities.Parcel{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, target)
	}
	if !roleAllows(actor, p.Status, target) {
		return entities.Parcel{}, fmt.Errorf("%w: %s may not move %s -> %s", ErrUnauthorized, actor, p.Status, target)
	}
	if requiresDriver(target) && p.AssignedDriverID == nil {
		return entities.Parcel{}, fmt.Errorf("%w: cannot move to %s", ErrUnassignedDriver, target)
	}

	p.Status = target
	return p, nil
}
