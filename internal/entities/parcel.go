package entities

import "time"

type Parcel struct {
	ID               string
	TrackingID       string
	Receiver         string
	Address          string
	Postcode         string
	WithinZone       bool
	Status           ParcelStatusType
	AssignedDriverID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ParcelStatusType string

const (
	ParcelCreated    ParcelStatusType = "created"
	ParcelAtHub      ParcelStatusType = "at_hub"
	ParcelDispatched ParcelStatusType = "dispatched"
	ParcelPickedUp   ParcelStatusType = "picked_up"
	ParcelInTransit  ParcelStatusType = "in_transit"
	ParcelDelivered  ParcelStatusType = "delivered"
	ParcelReturned   ParcelStatusType = "returned"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is permitted.
func (s ParcelStatusType) IsTerminal() bool {
	return s == ParcelDelivered || s == ParcelReturned
}

func ParcelStatuses() []ParcelStatusType {
	return []ParcelStatusType{
		ParcelCreated,
		ParcelAtHub,
		ParcelDispatched,
		ParcelPickedUp,
		ParcelInTransit,
		ParcelDelivered,
		ParcelReturned,
	}
}

type ParcelModify struct {
	ID               *string
	TrackingID       *string
	Receiver         *string
	Address          *string
	Postcode         *string
	WithinZone       *bool
	Status           *ParcelStatusType
	AssignedDriverID *string
}
